package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/cli"
)

func newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search the catalog",
		Long: `Fuzzy-search example titles, summaries, slugs, and categories.

Examples:
  promptdeck search json
  promptdeck search "output format" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			examples, err := svc.SearchExamples(query)
			if err != nil {
				return err
			}

			if outputFormat != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, examples)
			}

			if len(examples) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No examples match %q\n", query)
				return nil
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout())
			table.Header("SLUG", "TITLE", "CATEGORY")
			for _, e := range examples {
				table.Row(e.Slug, cli.TruncateString(e.Name, 40), e.Category)
			}
			table.Flush()
			return nil
		},
	}

	return cmd
}
