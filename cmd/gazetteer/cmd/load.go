package cmd

import (
	"github.com/spf13/cobra"
)

// NewLoadCommand creates the load command with app dependencies.
func NewLoadCommand(a Application) *cobra.Command {
	return &cobra.Command{
		Use:   "load <path>",
		Short: "Load a gazetteer file as the working gazetteer",
		Long: `Load replaces the working gazetteer with the one read from path and
persists it as the new working state. Journal order and crosswalk
contents survive the round trip.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			g, err := a.Gazetteer()
			if err != nil {
				return err
			}
			if err := g.Load(args[0]); err != nil {
				return err
			}
			if err := a.Persist(); err != nil {
				return err
			}
			c.Printf("Loaded %q (%d places) from %s\n", g.Local().Title, g.Local().Len(), args[0])
			return nil
		},
	}
}
