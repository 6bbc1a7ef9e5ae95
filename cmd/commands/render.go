package commands

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/renderer"
)

func newRenderCommand() *cobra.Command {
	var vars []string
	var interactive bool
	var format string

	cmd := &cobra.Command{
		Use:   "render <slug>",
		Short: "Render an example template with variable bindings",
		Long: `Substitute values into an example's {variable} placeholders. Unbound
placeholders are left as-is.

Examples:
  promptdeck render json-contract --var topic=weather --var fields=3
  promptdeck render json-contract --interactive
  promptdeck render json-contract --var topic=weather --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			slug := args[0]
			bindings := models.NewBindings()
			for _, v := range vars {
				name, value, ok := strings.Cut(v, "=")
				if !ok {
					return fmt.Errorf("invalid --var %q, expected name=value", v)
				}
				bindings.Set(name, value)
			}

			if interactive {
				example, err := svc.GetExample(slug)
				if err != nil {
					return err
				}
				for _, name := range renderer.ExtractVariables(example.Template) {
					if bindings.Has(name) {
						continue
					}
					var value string
					prompt := &survey.Input{Message: fmt.Sprintf("Value for {%s}:", name)}
					if err := survey.AskOne(prompt, &value); err != nil {
						return err
					}
					bindings.Set(name, value)
				}
			}

			var rendered string
			switch format {
			case "json":
				rendered, err = svc.RenderExampleJSON(slug, bindings)
			case "text", "":
				rendered, err = svc.RenderExample(slug, bindings)
			default:
				return fmt.Errorf("unknown format %q, expected text or json", format)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "Variable binding as name=value (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for each unbound variable")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Render format (text, json)")

	return cmd
}
