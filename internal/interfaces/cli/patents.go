package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPatentsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "patents",
		Short: "List the reference patent corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			patents, err := c.ListPatents(ctx)
			if err != nil {
				return err
			}

			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), patents)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPATENT\tFILED\tTITLE")
			for _, p := range patents {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.PatentNumber, p.FiledDate, p.Title)
			}
			return w.Flush()
		},
	}
}
