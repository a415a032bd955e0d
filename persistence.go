package gazetteer

import (
	"github.com/agentstation/gazetteer/pkg/save"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*gazetteer)(nil)

// Persistence handles gazetteer persistence operations.
type Persistence interface {
	// Save persists the local gazetteer with the given options
	Save(opts ...save.Option) error

	// Load replaces the local gazetteer with one read from path
	Load(path string) error
}
