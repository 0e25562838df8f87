package repository

import "time"

// Clock provides current time.
type Clock interface {
	Now() time.Time
}

// RealClock is the default clock. It reports local time so that
// "today" boundaries follow the process timezone.
type RealClock struct{}

// Now returns current time.
func (RealClock) Now() time.Time { return time.Now() }

// NewRealClock returns RealClock as a Clock.
func NewRealClock() Clock { return RealClock{} }
