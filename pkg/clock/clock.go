package clock

import "time"

// Clock supplies the current time to services so that time-dependent rules
// (membership validity, booking timestamps) stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	t time.Time
}

// NewFixed returns a Clock frozen at t.
func NewFixed(t time.Time) Clock {
	return fixedClock{t: t}
}

func (c fixedClock) Now() time.Time {
	return c.t
}
