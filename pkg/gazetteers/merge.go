package gazetteers

import (
	"strconv"

	"github.com/agentstation/gazetteer/pkg/errors"
)

// Merge folds the place at sourcePos into the place at targetPos, both
// current 1-based display positions, then removes the source from the
// gazetteer. Descriptions, names, and locations are appended to the
// target in source order with no deduplication; externals are unioned;
// the target's journal receives a single "merged_from" entry naming the
// source's title. The source's own journal entries are not copied: they
// remain attached to the absorbed sub-entities and the discarded shell,
// keeping "facts now owned by target" distinct from "the historical act
// of merging".
//
// After a merge every place past the removed source shifts down one
// display position; ids are unaffected. Repeating the same merge call
// appends a second "merged_from" entry, since each merge is itself a
// provenance-worthy event.
func (l *Local) Merge(sourcePos, targetPos int) (*Place, error) {
	source, err := l.Place(sourcePos)
	if err != nil {
		return nil, err
	}
	target, err := l.Place(targetPos)
	if err != nil {
		return nil, err
	}
	if source == target {
		return nil, errors.NewInvalidMergeError(
			strconv.Itoa(sourcePos), strconv.Itoa(targetPos),
			"a place cannot be merged into itself")
	}

	target.Descriptions = append(target.Descriptions, source.Descriptions...)
	target.names = append(target.names, source.names...)
	target.locations = append(target.locations, source.locations...)
	if err := target.externals.MergeFrom(source.externals); err != nil {
		return nil, err
	}
	target.journal.Append(Event{EventMergedFrom: source.Title})

	// Ownership has transferred; retire the source shell.
	source.names = nil
	source.locations = nil
	l.remove(source)
	return target, nil
}

// remove drops a place from the sequence, shifting later places down one
// display position.
func (l *Local) remove(p *Place) {
	for i, candidate := range l.places {
		if candidate == p {
			l.places = append(l.places[:i], l.places[i+1:]...)
			return
		}
	}
}
