// Package cli implements the claimscout command line interface. Every
// command talks to a running API server through the pkg/client SDK.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/ClaimScout/pkg/client"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds global CLI flags shared by all subcommands.
type rootOptions struct {
	serverAddr string
	output     string
	timeout    time.Duration
}

// NewRootCommand creates the root cobra command with all global flags and
// subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "claimscout",
		Short:   "ClaimScout CLI - patent claim similarity search and analysis",
		Long:    "ClaimScout searches a reference patent corpus for claims similar to\nyour text and produces AI-backed structured claim analyses.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case "text", "json":
				return nil
			default:
				return fmt.Errorf("invalid --output %q; expected text or json", opts.output)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.serverAddr, "server", "http://localhost:8080", "API server address")
	pf.StringVarP(&opts.output, "output", "o", "text", "output format (text, json)")
	pf.DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")

	cmd.AddCommand(
		newSearchCmd(opts),
		newAnalyzeCmd(opts),
		newPatentsCmd(opts),
	)

	return cmd
}

// newClient builds an SDK client from the global flags.
func (o *rootOptions) newClient() (*client.Client, error) {
	return client.NewClient(o.serverAddr,
		client.WithHTTPClient(&http.Client{Timeout: o.timeout}),
	)
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
