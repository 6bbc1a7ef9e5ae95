package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/cli"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			categories, err := svc.ListCategories()
			if err != nil {
				return err
			}

			if outputFormat != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, categories)
			}

			for _, c := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
