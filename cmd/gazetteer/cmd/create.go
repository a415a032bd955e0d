package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewCreateCommand creates the create command with app dependencies.
func NewCreateCommand(a Application) *cobra.Command {
	return &cobra.Command{
		Use:   "create <title>...",
		Short: "Create a new place by title",
		Long: `Create adds a born-local place with the given title to the working
gazetteer. The place starts with an empty crosswalk and a journal
opened with a "created" entry; names and locations arrive later through
merges with accessioned records.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			g, err := a.Gazetteer()
			if err != nil {
				return err
			}
			place, position, err := g.Local().Create(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := a.Persist(); err != nil {
				return err
			}
			c.Printf("Created %q at position %d (id %s)\n", place.Title, position, place.ID())
			return nil
		},
	}
}
