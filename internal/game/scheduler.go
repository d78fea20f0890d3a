package game

import "time"

// Timer is the handle to a pending deferred callback. Stop reports whether
// the callback was cancelled before firing.
type Timer interface {
	Stop() bool
}

// Scheduler arms the single round-clock callback of a session. The real
// implementation defers to time.AfterFunc; tests substitute a manual clock.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realScheduler struct{}

// NewScheduler returns the time.AfterFunc-backed scheduler.
func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
