// Package cmd implements the gazetteer CLI subcommands. Commands are
// presentation only: every operation they perform lives in the library.
package cmd

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/agentstation/gazetteer"
	"github.com/agentstation/gazetteer/pkg/errors"
)

// Application is the dependency surface commands need from the app.
type Application interface {
	// Gazetteer returns the working gazetteer instance
	Gazetteer() (gazetteer.Gazetteer, error)

	// Persist writes the working gazetteer back to its data file
	Persist() error

	// DataFile returns the path of the working gazetteer file
	DataFile() string

	// Logger returns the application logger
	Logger() *zerolog.Logger

	// Verbose reports whether verbose output was requested
	Verbose() bool
}

// parsePosition parses a 1-based display position argument.
func parsePosition(arg string) (int, error) {
	position, err := strconv.Atoi(arg)
	if err != nil || position < 1 {
		return 0, errors.NewValidationError("position", arg, "expected a 1-based display position")
	}
	return position, nil
}
