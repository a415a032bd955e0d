package cmd

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command with app dependencies.
func NewListCommand(a Application) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the places in the working gazetteer",
		Long: `List shows every place with its current 1-based display position.
Positions shift when places are merged away; use them immediately
rather than storing them.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			g, err := a.Gazetteer()
			if err != nil {
				return err
			}
			local := g.Local()
			listings := local.List()
			if len(listings) == 0 {
				c.Printf("%s is empty\n", local.Title)
				return nil
			}
			c.Printf("%s (%d places):\n\n", local.Title, len(listings))
			for _, l := range listings {
				c.Printf("%3d. %s\n", l.Position, l.Title)
				if l.Summary != "" {
					c.Printf("     %s\n", l.Summary)
				}
			}
			return nil
		},
	}
}
