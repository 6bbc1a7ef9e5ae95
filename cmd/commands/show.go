package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/cli"
)

func newShowCommand() *cobra.Command {
	var raw bool
	var showMetadata bool

	cmd := &cobra.Command{
		Use:     "show <slug>",
		Aliases: []string{"get"},
		Short:   "Display one example",
		Long: `Display an example: its template, metadata, and markdown body rendered
for the terminal.

Examples:
  promptdeck show json-contract
  promptdeck show json-contract --raw
  promptdeck show json-contract -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			example, err := svc.GetExample(args[0])
			if err != nil {
				return err
			}

			if outputFormat != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, example)
			}

			out := cmd.OutOrStdout()

			if showMetadata {
				fmt.Fprintf(out, "Slug: %s\n", example.Slug)
				fmt.Fprintf(out, "Category: %s\n", example.Category)
				fmt.Fprintf(out, "Difficulty: %s\n", example.Difficulty)
				if !example.UpdatedAt.IsZero() {
					fmt.Fprintf(out, "Updated: %s\n", example.UpdatedAt.Format("2006-01-02"))
				}
				fmt.Fprintln(out, strings.Repeat("-", 80))
			}

			if raw {
				fmt.Fprintf(out, "# %s\n\n%s\n\n---\n\n%s\n", example.Name, example.Template, example.Body)
				return nil
			}

			doc := fmt.Sprintf("# %s\n\n%s\n\n## Template\n\n```\n%s\n```\n\n%s",
				example.Name, example.Summary, example.Template, example.Body)

			rendered, err := glamour.Render(doc, "auto")
			if err != nil {
				// Fall back to raw output if the terminal renderer fails
				fmt.Fprintln(out, doc)
				return nil
			}
			fmt.Fprint(out, rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown without terminal rendering")
	cmd.Flags().BoolVarP(&showMetadata, "metadata", "m", false, "Show example metadata")

	return cmd
}
