package cmd

import (
	"path/filepath"

	"github.com/agentstation/utc"
	"github.com/spf13/cobra"

	"github.com/agentstation/gazetteer/pkg/errors"
	"github.com/agentstation/gazetteer/pkg/save"
)

// NewExportCommand creates the export command with app dependencies.
func NewExportCommand(a Application) *cobra.Command {
	var (
		dir    string
		format string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the gazetteer to a timestamped file",
		Long: `Export writes a snapshot of the working gazetteer to a timestamped
file named after the gazetteer's title, like
"my-gazetteer-20260831T120000Z.json".`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			var f save.Format
			switch format {
			case "json", "":
				f = save.FormatJSON
			case "yaml":
				f = save.FormatYAML
			default:
				return errors.NewValidationError("format", format, "expected json or yaml")
			}
			g, err := a.Gazetteer()
			if err != nil {
				return err
			}
			path := filepath.Join(dir, save.ExportFilename(g.Local().Title, utc.Now(), f))
			if err := g.Save(save.WithPath(path), save.WithFormat(f)); err != nil {
				return err
			}
			c.Printf("Exported %q (%d places) to %s\n", g.Local().Title, g.Local().Len(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to write the export into")
	cmd.Flags().StringVarP(&format, "format", "o", "json", "export format: json, yaml")
	return cmd
}
