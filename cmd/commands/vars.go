package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/cli"
	"github.com/promptdeck/promptdeck/internal/renderer"
)

func newVarsCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "vars [slug]",
		Aliases: []string{"variables"},
		Short:   "List the placeholders in a template",
		Long: `List the {variable} placeholders of an example template, in order of
first appearance.

Examples:
  promptdeck vars json-contract
  promptdeck vars --file draft.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && file == "" {
				return fmt.Errorf("provide a slug or --file")
			}

			svc, err := newService()
			if err != nil {
				return err
			}

			slug := ""
			if len(args) > 0 {
				slug = args[0]
			}
			template, err := readTemplateArg(svc, slug, file)
			if err != nil {
				return err
			}

			variables := renderer.ExtractVariables(template)

			if outputFormat != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, variables)
			}

			if len(variables) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No placeholders found")
				return nil
			}
			for _, v := range variables {
				fmt.Fprintf(cmd.OutOrStdout(), "{%s}\n", v)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the template from a file instead of the catalog")

	return cmd
}
