package cmd

import (
	"encoding/json"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/agentstation/gazetteer/pkg/errors"
	"github.com/agentstation/gazetteer/pkg/gazetteers"
)

// NewShowCommand creates the show command with app dependencies.
func NewShowCommand(a Application) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <position>",
		Short: "Show a place in full, including journal and crosswalk",
		Long: `Show prints one place in its plain interchange form: titles, names,
locations, the externals crosswalk, and the full provenance journal in
insertion order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			g, err := a.Gazetteer()
			if err != nil {
				return err
			}
			place, err := g.Local().Place(position)
			if err != nil {
				return err
			}
			plain := gazetteers.ToPlain(place)

			switch format {
			case "yaml":
				data, err := yaml.Marshal(plain)
				if err != nil {
					return errors.WrapParse("yaml", "place", err)
				}
				_, err = os.Stdout.Write(data)
				return err
			case "json", "":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(plain)
			default:
				return errors.NewValidationError("format", format, "expected json or yaml")
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "json", "output format: json, yaml")
	return cmd
}
