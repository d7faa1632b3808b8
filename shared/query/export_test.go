package query

import "time"

// SetClock replaces the clock of a client built by New.
func SetClock(c Client, now func() time.Time) {
	c.(*clientImpl).now = now
}

// Tombstones reports how many invalidated prefixes the client still tracks.
func Tombstones(c Client) int {
	impl := c.(*clientImpl)

	impl.mu.RLock()
	defer impl.mu.RUnlock()

	return len(impl.tombstones)
}
