package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/site"
)

func newExportCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as a static HTML site",
		Long: `Render the whole catalog to a static HTML site: an index grouped by
category and one page per example with its body, template, variables,
and heuristic score.

Examples:
  promptdeck export
  promptdeck export --out ./public`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			examples, err := svc.ListExamples()
			if err != nil {
				return err
			}

			// Pages need full content, not cache-thin records
			full := make([]*models.Example, 0, len(examples))
			for _, e := range examples {
				loaded, err := svc.GetExample(e.Slug)
				if err != nil {
					return err
				}
				full = append(full, loaded)
			}

			exporter, err := site.NewExporter()
			if err != nil {
				return err
			}
			if err := exporter.Export(full, outDir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d example(s) to %s\n", len(full), outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "site", "Output directory for the generated site")

	return cmd
}
