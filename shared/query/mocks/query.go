package mocks

import (
	"context"
	"encoding/json"
	"seatpos/shared/query"
	"sync"
)

// Query is a query.Client without a cache. Every read runs its fetch once and every
// invalidation is recorded in order.
type Query struct {
	mu          sync.Mutex
	Reads       []string
	Invalidated []string
	Cleared     int
}

func NewQuery() *Query {
	return &Query{}
}

// Read implements query.Client.
func (q *Query) Read(ctx context.Context, key string, _ query.Policy, dest any, fetch query.FetchFunc) error {
	q.mu.Lock()
	q.Reads = append(q.Reads, key)
	q.mu.Unlock()

	value, err := fetch(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return json.Unmarshal(raw, dest) //nolint:wrapcheck
}

// Invalidate implements query.Client.
func (q *Query) Invalidate(_ context.Context, prefixes ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.Invalidated = append(q.Invalidated, prefixes...)
}

// Clear implements query.Client.
func (q *Query) Clear(_ context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.Cleared++
}

// Snapshot returns a copy of the recorded invalidations.
func (q *Query) Snapshot() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	return append([]string(nil), q.Invalidated...)
}
