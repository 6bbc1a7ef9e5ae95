package commands

import (
	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/server"
)

func newServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Long: `Start the JSON API server: catalog listing and search, template
rendering, scoring, and variable extraction, with OpenAPI docs at /api.

Examples:
  promptdeck serve
  promptdeck serve --port 9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			return server.NewServer(svc, port).Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")

	return cmd
}
