// Package clock lets stored timestamps be pinned in tests
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real reads the system clock
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant
type Fixed struct {
	t time.Time
}

// NewFixed returns a clock stopped at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

// Now returns the fixed instant
func (f *Fixed) Now() time.Time {
	return f.t
}
