package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/turtacn/ClaimScout/pkg/client"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var (
		searchText string
		searchPDF  string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the corpus for patents with similar claims",
		Long:  "Search ranks every corpus patent by claim similarity to the given text\nor to the text extracted from an uploaded PDF.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if searchText == "" && searchPDF == "" {
				return fmt.Errorf("either --text or --pdf must be provided")
			}
			if searchText != "" && searchPDF != "" {
				return fmt.Errorf("--text and --pdf are mutually exclusive, provide only one")
			}

			c, err := opts.newClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			var resp *client.SimilarityResponse
			if searchPDF != "" {
				content, err := os.ReadFile(searchPDF)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", searchPDF, err)
				}
				resp, err = c.SearchSimilarPDF(ctx, searchPDF, content)
				if err != nil {
					return err
				}
			} else {
				resp, err = c.SearchSimilar(ctx, searchText)
				if err != nil {
					return err
				}
			}

			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			return printSimilarityTable(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&searchText, "text", "", "claim text to search with")
	cmd.Flags().StringVar(&searchPDF, "pdf", "", "path to a PDF document to search with")

	return cmd
}

func printSimilarityTable(cmd *cobra.Command, resp *client.SimilarityResponse) error {
	if len(resp.Results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No results.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tPATENT\tTITLE\tASSIGNEE")
	for _, r := range resp.Results {
		fmt.Fprintf(w, "%.2f\t%s\t%s\t%s\n",
			r.SimilarityScore, r.Patent.PatentNumber, r.Patent.Title, r.Patent.Assignee)
	}
	return w.Flush()
}
