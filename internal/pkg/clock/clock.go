package clock

import "time"

// Clock abstracts time so expiry logic stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func New() Clock {
	return &realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// Fixed is a hand-driven clock for tests.
type Fixed struct {
	current time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t}
}

func (f *Fixed) Now() time.Time {
	return f.current
}

func (f *Fixed) Set(t time.Time) {
	f.current = t
}

func (f *Fixed) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
