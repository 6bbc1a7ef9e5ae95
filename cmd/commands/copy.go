package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/clipboard"
	"github.com/promptdeck/promptdeck/internal/models"
)

func newCopyCommand() *cobra.Command {
	var vars []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "copy <slug>",
		Short: "Copy a rendered example to the clipboard",
		Long: `Render an example and copy the result to the system clipboard, ready to
paste into a model chat.

Examples:
  promptdeck copy json-contract --var topic=weather
  promptdeck copy json-contract --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			bindings := models.NewBindings()
			for _, v := range vars {
				name, value, ok := strings.Cut(v, "=")
				if !ok {
					return fmt.Errorf("invalid --var %q, expected name=value", v)
				}
				bindings.Set(name, value)
			}

			var rendered string
			if asJSON {
				rendered, err = svc.RenderExampleJSON(args[0], bindings)
			} else {
				rendered, err = svc.RenderExample(args[0], bindings)
			}
			if err != nil {
				return err
			}

			message, err := clipboard.CopyWithFallback(rendered)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "Variable binding as name=value (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Copy as a JSON message array")

	return cmd
}
