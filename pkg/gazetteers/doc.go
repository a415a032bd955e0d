// Package gazetteers provides the core data model for assembling a local
// gazetteer: a curated, ordered collection of place records drawn from
// heterogeneous external gazetteer services.
//
// Every entity (Place, Name, Location) carries two provenance structures:
// an append-only Journal of timestamped events and an Externals crosswalk
// mapping external identifier URIs to the set of source documents that
// asserted them. The Local collection assigns ephemeral 1-based display
// positions and supports researcher-initiated merges that fold one place
// into another without losing information.
//
// Example usage:
//
//	local := gazetteers.NewLocal("my sites")
//	place, pos, err := local.CreateFrom(record)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Later, fold a duplicate at position 2 into position 1
//	merged, err := local.Merge(2, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Export the canonical interchange form
//	plain := gazetteers.ToPlain(merged)
package gazetteers
