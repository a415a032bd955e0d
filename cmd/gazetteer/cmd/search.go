package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/gazetteer/pkg/sources"
)

// NewSearchCommand creates the search command with app dependencies.
func NewSearchCommand(a Application) *cobra.Command {
	return &cobra.Command{
		Use:   "search <source> <query>...",
		Short: "Search an external gazetteer service",
		Long: `Search queries one external service and lists its hits. Pass a hit's
URI to "accession" to add the full record to the working gazetteer.

Sources: pleiades, nominatim, geonames.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			g, err := a.Gazetteer()
			if err != nil {
				return err
			}
			id := sources.ID(args[0])
			query := strings.Join(args[1:], " ")

			hits, err := g.Search(c.Context(), id, query)
			if err != nil {
				return err
			}
			if len(hits) == 0 {
				c.Printf("No hits from %s for %q\n", id, query)
				return nil
			}
			c.Printf("%d hits from %s for %q:\n\n", len(hits), id, query)
			for i, hit := range hits {
				c.Printf("%3d. %s\n", i+1, hit.Title)
				if hit.Summary != "" {
					c.Printf("     %s\n", hit.Summary)
				}
				c.Printf("     %s\n", hit.DetailURI)
			}
			return nil
		},
	}
}
