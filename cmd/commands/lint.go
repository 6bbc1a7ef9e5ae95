package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/cli"
)

func newLintCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "lint [slug]",
		Short: "Check examples for metadata and template issues",
		Long: `Validate catalog examples: required fields, slug format, known
difficulty, and malformed placeholders.

Examples:
  promptdeck lint json-contract
  promptdeck lint --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return fmt.Errorf("provide a slug or --all")
			}

			svc, err := newService()
			if err != nil {
				return err
			}

			slugs := args
			if all {
				examples, err := svc.ListExamples()
				if err != nil {
					return err
				}
				slugs = nil
				for _, e := range examples {
					slugs = append(slugs, e.Slug)
				}
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, slug := range slugs {
				result, err := svc.LintExample(slug)
				if err != nil {
					return err
				}

				if outputFormat != string(cli.FormatText) {
					if err := cli.OutputResults(out, outputFormat, result); err != nil {
						return err
					}
					if !result.Valid {
						failed++
					}
					continue
				}

				if result.Valid && len(result.Warnings) == 0 {
					fmt.Fprintf(out, "✓ %s\n", slug)
					continue
				}
				fmt.Fprintf(out, "%s:\n", slug)
				for _, e := range result.Errors {
					fmt.Fprintf(out, "  error: %s: %s\n", e.Field, e.Message)
				}
				for _, w := range result.Warnings {
					fmt.Fprintf(out, "  warning: %s: %s\n", w.Field, w.Message)
				}
				if !result.Valid {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d example(s) failed validation", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Lint every example in the catalog")

	return cmd
}
