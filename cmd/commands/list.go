package commands

import (
	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/cli"
	"github.com/promptdeck/promptdeck/internal/models"
)

func newListCommand() *cobra.Command {
	var category string
	var difficulty string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List catalog examples",
		Long: `List all examples in the catalog, optionally filtered by category or
difficulty.

Examples:
  promptdeck list
  promptdeck list --category structure
  promptdeck list --difficulty beginner -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			var examples []*models.Example
			switch {
			case category != "":
				examples, err = svc.FilterByCategory(category)
			case difficulty != "":
				examples, err = svc.FilterByDifficulty(difficulty)
			default:
				examples, err = svc.ListExamples()
			}
			if err != nil {
				return err
			}

			if outputFormat != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, examples)
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout())
			table.Header("SLUG", "TITLE", "CATEGORY", "DIFFICULTY")
			for _, e := range examples {
				table.Row(e.Slug, cli.TruncateString(e.Name, 40), e.Category, e.Difficulty)
			}
			table.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Filter by difficulty")

	return cmd
}
