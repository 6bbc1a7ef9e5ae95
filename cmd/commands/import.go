package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/importer"
)

func newImportCommand() *cobra.Command {
	var options importer.ImportOptions

	cmd := &cobra.Command{
		Use:   "import <directory>",
		Short: "Import markdown files as catalog examples",
		Long: `Scan a directory recursively for markdown files and add them to the
catalog. Files with promptdeck frontmatter keep their metadata; plain
markdown files get a slug from the filename and a title from the first H1.

Examples:
  promptdeck import ~/prompts --category imported
  promptdeck import ~/prompts --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			imp := importer.NewMarkdownImporter(svc.Storage())
			result, err := imp.Import(args[0], options)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			verb := "Imported"
			if options.DryRun {
				verb = "Would import"
			}
			for _, e := range result.Imported {
				fmt.Fprintf(out, "%s %s (%s)\n", verb, e.Slug, e.Name)
			}
			for _, path := range result.Skipped {
				fmt.Fprintf(out, "Skipped %s (slug already exists)\n", path)
			}
			for _, importErr := range result.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", importErr)
			}
			fmt.Fprintf(out, "%s %d example(s), skipped %d\n", verb, len(result.Imported), len(result.Skipped))

			if !options.DryRun && len(result.Imported) > 0 {
				return svc.ReloadExamples()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&options.Category, "category", "c", "imported", "Category for imported examples")
	cmd.Flags().StringVarP(&options.Difficulty, "difficulty", "d", "beginner", "Difficulty for imported examples")
	cmd.Flags().BoolVar(&options.DryRun, "dry-run", false, "Preview the import without writing files")
	cmd.Flags().BoolVar(&options.OverwriteExisting, "overwrite", false, "Overwrite examples with the same slug")

	return cmd
}
