package service

import "time"

// SetClock replaces the local clock of a service built by New.
func SetClock(a Account, now func() time.Time) {
	a.(*serviceImpl).now = now
}
