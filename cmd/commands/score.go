package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/analyzer"
	"github.com/promptdeck/promptdeck/internal/cli"
)

func newScoreCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "score [slug]",
		Short: "Score a template against the quality heuristics",
		Long: `Score a template from 50 to 100 using heuristic checks for role framing,
section delimiters, output format instructions, constraints, placeholders,
and length, with feedback for each check.

Examples:
  promptdeck score json-contract
  promptdeck score --file draft.txt
  promptdeck score json-contract -o json`,
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

			result := analyzer.ScorePrompt(template)

			if outputFormat != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Score: %d/100\n", result.Score)
			if len(result.Strengths) > 0 {
				fmt.Fprintln(out, "\nStrengths:")
				cli.BulletList(out, result.Strengths)
			}
			if len(result.Improvements) > 0 {
				fmt.Fprintln(out, "\nImprovements:")
				cli.BulletList(out, result.Improvements)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the template from a file instead of the catalog")

	return cmd
}
