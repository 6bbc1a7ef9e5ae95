// Package commands defines the promptdeck command line interface. Each
// subcommand is a thin wrapper over the service layer; running with no
// subcommand starts the interactive TUI.
package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/service"
	"github.com/promptdeck/promptdeck/internal/ui"
)

// Version is set during build with -ldflags
var Version = "dev"

// outputFormat is the shared -o/--output flag value
var outputFormat string

// NewRootCommand creates the root promptdeck command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "promptdeck",
		Short: "Prompt-engineering example catalog and playground",
		Long: `promptdeck is a catalog of worked prompt-engineering examples stored as
plain markdown files, with a template playground (variable substitution and
heuristic quality scoring), an HTTP API, and a static site exporter.

Run with no arguments to browse the catalog interactively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			model, err := ui.NewModel(svc)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to start the terminal interface: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml)")

	rootCmd.AddCommand(
		newInitCommand(),
		newListCommand(),
		newShowCommand(),
		newSearchCommand(),
		newCategoriesCommand(),
		newVarsCommand(),
		newRenderCommand(),
		newScoreCommand(),
		newCopyCommand(),
		newLintCommand(),
		newImportCommand(),
		newExportCommand(),
		newServeCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

// newService initializes the catalog service for a command invocation
func newService() (*service.Service, error) {
	svc, err := service.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize promptdeck: %w", err)
	}
	return svc, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the promptdeck version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("promptdeck version %s\n", Version)
		},
	}
}

// readTemplateArg resolves a template from either a catalog slug or a file
// path (used by score and vars, which work on arbitrary templates too)
func readTemplateArg(svc *service.Service, slug, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read template file: %w", err)
		}
		return string(data), nil
	}
	example, err := svc.GetExample(slug)
	if err != nil {
		return "", err
	}
	return example.Template, nil
}
