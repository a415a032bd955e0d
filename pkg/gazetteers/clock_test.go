package gazetteers

import (
	"time"

	"github.com/agentstation/utc"
)

// stepClock advances by a fixed step on every call, keeping journal
// ordering deterministic under test.
type stepClock struct {
	current time.Time
	step    time.Duration
}

func newStepClock() *stepClock {
	return &stepClock{
		current: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		step:    time.Second,
	}
}

func (c *stepClock) Now() utc.Time {
	c.current = c.current.Add(c.step)
	return utc.Time{Time: c.current}
}

// frozenClock always reports the same instant.
type frozenClock struct {
	current time.Time
}

func (c *frozenClock) Now() utc.Time {
	return utc.Time{Time: c.current}
}

// reversingClock reports times that move backwards, to exercise the
// non-decreasing clamp.
type reversingClock struct {
	current time.Time
}

func (c *reversingClock) Now() utc.Time {
	c.current = c.current.Add(-time.Second)
	return utc.Time{Time: c.current}
}
