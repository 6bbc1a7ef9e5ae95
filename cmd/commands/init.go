package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new example library",
		Long: `Creates the library directory structure (default ~/.promptdeck, override
with PROMPTDECK_DIR) and installs the embedded starter examples.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			if err := svc.InitLibrary(); err != nil {
				return fmt.Errorf("failed to initialize library: %w", err)
			}

			fmt.Println("Initialized promptdeck library")
			fmt.Println("Run 'promptdeck' to browse the catalog.")
			return nil
		},
	}
}
