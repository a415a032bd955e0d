package cmd

import (
	"github.com/spf13/cobra"
)

// NewMergeCommand creates the merge command with app dependencies.
func NewMergeCommand(a Application) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <source-position> <target-position>",
		Short: "Merge one place into another",
		Long: `Merge folds the place at the source position into the place at the
target position: descriptions, names, locations, and crosswalk entries
move across, the target's journal records the merge, and the source
place is removed. Positions of later places shift down by one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			source, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			target, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			g, err := a.Gazetteer()
			if err != nil {
				return err
			}
			merged, err := g.Local().Merge(source, target)
			if err != nil {
				return err
			}
			if err := a.Persist(); err != nil {
				return err
			}
			position, _ := g.Local().PositionOf(merged.ID())
			c.Printf("Merged position %d into %q (now position %d)\n", source, merged.Title, position)
			return nil
		},
	}
}
