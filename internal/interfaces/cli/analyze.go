package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var analyzeText string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run an AI analysis of a patent claim",
		RunE: func(cmd *cobra.Command, args []string) error {
			if analyzeText == "" {
				return fmt.Errorf("--text is required")
			}

			c, err := opts.newClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			result, err := c.Analyze(ctx, analyzeText)
			if err != nil {
				return err
			}

			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Technology domain: %s\n", result.TechnologyDomain)
			fmt.Fprintf(out, "Claim elements:    %d\n", result.ClaimElements)
			fmt.Fprintf(out, "Key terms:         %s\n", strings.Join(result.KeyTerms, ", "))
			fmt.Fprintf(out, "Summary:           %s\n", result.Summary)
			if len(result.Suggestions) > 0 {
				fmt.Fprintln(out, "Suggestions:")
				for _, s := range result.Suggestions {
					fmt.Fprintf(out, "  - %s\n", s)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&analyzeText, "text", "", "claim text to analyze (required)")

	return cmd
}
