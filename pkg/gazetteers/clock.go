package gazetteers

import "github.com/agentstation/utc"

// Clock supplies timestamps for journal entries. The system clock is used
// in production; tests inject a controllable sequence so that journal
// ordering stays deterministic without sub-microsecond clock resolution.
type Clock interface {
	Now() utc.Time
}

type systemClock struct{}

func (systemClock) Now() utc.Time { return utc.Now() }

// SystemClock is the default wall-clock timestamp source.
var SystemClock Clock = systemClock{}
