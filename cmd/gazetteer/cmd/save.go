package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gazetteer/pkg/save"
)

// NewSaveCommand creates the save command with app dependencies.
func NewSaveCommand(a Application) *cobra.Command {
	return &cobra.Command{
		Use:   "save [path]",
		Short: "Save the working gazetteer",
		Long: `Save writes the working gazetteer to the given path, or to the data
file when no path is given. The format follows the file extension:
.json (canonical) or .yaml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			g, err := a.Gazetteer()
			if err != nil {
				return err
			}
			path := a.DataFile()
			if len(args) == 1 {
				path = args[0]
			}
			if err := g.Save(save.WithPath(path)); err != nil {
				return err
			}
			c.Printf("Saved %q to %s\n", g.Local().Title, path)
			return nil
		},
	}
}
