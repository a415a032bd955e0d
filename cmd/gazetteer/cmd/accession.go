package cmd

import (
	"github.com/spf13/cobra"
)

// NewAccessionCommand creates the accession command with app dependencies.
func NewAccessionCommand(a Application) *cobra.Command {
	return &cobra.Command{
		Use:   "accession <uri>",
		Short: "Fetch a detail record and add it to the gazetteer",
		Long: `Accession fetches the record behind a detail URI, normalizes it, and
adds the resulting place to the working gazetteer. The URI is routed to
whichever source claims its host, so URIs pasted from any supported
service work directly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			g, err := a.Gazetteer()
			if err != nil {
				return err
			}
			place, position, err := g.Accession(c.Context(), args[0])
			if err != nil {
				return err
			}
			if err := a.Persist(); err != nil {
				return err
			}
			c.Printf("Accessioned %q at position %d\n", place.Title, position)
			if summary := place.Summary(); summary != "" {
				c.Printf("  %s\n", summary)
			}
			return nil
		},
	}
}
