// Package query is the read cache in front of the remote service. Every read goes through a
// keyed entry with a staleness window, a retention window and a retry budget. Writes never
// pass through here, they only invalidate.
package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"seatpos/config"
	"seatpos/infras/otel"
	"seatpos/shared"
	"seatpos/shared/cache"
	"seatpos/shared/timezone"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	otelScopeName         = "query"
	otelQueryKeyAttribute = "query.key"
	otelQueryHitAttribute = "query.hit"

	// tombstoneGrace covers a read that started before an invalidation and was kept after it.
	tombstoneGrace = time.Minute
)

// Policy controls how long an entry is served without refetching (Stale), how long it is kept
// at all (Retain) and how many extra attempts a failed read gets (Retry).
type Policy struct {
	Stale  time.Duration
	Retain time.Duration
	Retry  int
}

// DefaultPolicy is the policy of every catalog, room, booking and order read.
func DefaultPolicy(cfg *config.Config) Policy {
	return Policy{
		Stale:  time.Duration(cfg.Cache.StaleSeconds) * time.Second,
		Retain: time.Duration(cfg.Cache.RetainSeconds) * time.Second,
		Retry:  cfg.Cache.ReadRetry,
	}
}

// CatalogPolicy is the policy of reads that rarely change: catalog, branch and profile.
func CatalogPolicy(cfg *config.Config) Policy {
	policy := DefaultPolicy(cfg)
	policy.Stale = time.Duration(cfg.Cache.CatalogStaleSeconds) * time.Second

	return policy
}

// ClockPolicy is the policy of the server clock probe.
func ClockPolicy(cfg *config.Config) Policy {
	policy := DefaultPolicy(cfg)
	policy.Stale = time.Duration(cfg.Cache.ClockStaleSeconds) * time.Second

	return policy
}

// FetchFunc loads the value of one entry from the remote service.
type FetchFunc func(ctx context.Context) (any, error)

type Client interface {
	// Read fills dest from the entry under key, running fetch when the entry is missing or stale.
	Read(ctx context.Context, key string, policy Policy, dest any, fetch FetchFunc) error
	// Invalidate marks every entry under the prefixes stale and drops them from the cache.
	Invalidate(ctx context.Context, prefixes ...string)
	// Clear invalidates every entry.
	Clear(ctx context.Context)
}

type entry struct {
	FetchedAt time.Time       `json:"fetchedAt"`
	Value     json.RawMessage `json:"value"`
}

type clientImpl struct {
	cache     cache.RedisCache
	otel      otel.Otel
	namespace string
	now       func() time.Time

	flight singleflight.Group
	epoch  atomic.Uint64

	mu         sync.RWMutex
	tombstones map[string]time.Time
	retain     time.Duration
}

func New(c cache.RedisCache, cfg *config.Config, ot otel.Otel) Client {
	return &clientImpl{
		cache:      c,
		otel:       ot,
		namespace:  cfg.Cache.Namespace,
		now:        timezone.Now,
		tombstones: make(map[string]time.Time),
	}
}

func (q *clientImpl) Read(ctx context.Context, key string, policy Policy, dest any, fetch FetchFunc) (err error) {
	ctx, scope := q.otel.NewScope(ctx, otelScopeName, otelScopeName+".Read")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelQueryKeyAttribute, key)
	q.observeRetain(policy.Retain)

	var cached entry

	err = q.cache.Get(ctx, q.cacheKey(key), &cached)
	switch {
	case err == nil:
		if q.fresh(key, cached, policy) {
			scope.SetAttribute(otelQueryHitAttribute, true)

			return decode(cached.Value, dest)
		}
	case errors.Is(err, cache.Nil):
	default:
		log.Warn().Err(err).Str("key", key).Msg("read cache unavailable, fetching directly")
	}

	scope.SetAttribute(otelQueryHitAttribute, false)

	flightKey := strconv.FormatUint(q.epoch.Load(), 10) + "|" + key

	result := q.flight.DoChan(flightKey, func() (any, error) {
		return q.load(context.WithoutCancel(ctx), key, policy, fetch)
	})

	select {
	case <-ctx.Done():
		return fmt.Errorf("read %s: %w", key, ctx.Err())
	case res := <-result:
		if res.Err != nil {
			return res.Err
		}

		raw, _ := res.Val.(json.RawMessage)

		return decode(raw, dest)
	}
}

func (q *clientImpl) load(ctx context.Context, key string, policy Policy, fetch FetchFunc) (json.RawMessage, error) {
	startedAt := q.now()

	var (
		value any
		err   error
	)

	for attempt := 0; attempt <= policy.Retry; attempt++ {
		value, err = fetch(ctx)
		if err == nil {
			break
		}

		log.Warn().Err(err).Str("key", key).Int("attempt", attempt+1).Msg("read failed")
	}

	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", key, err)
	}

	retain := int(math.Ceil(policy.Retain.Seconds()))
	if retain > 0 {
		if err := q.cache.Save(ctx, q.cacheKey(key), entry{FetchedAt: startedAt, Value: raw}, retain); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to keep read in cache")
		}
	}

	return raw, nil
}

// fresh reports whether the entry is younger than the stale window and was fetched after
// the last invalidation touching its key.
func (q *clientImpl) fresh(key string, e entry, policy Policy) bool {
	if q.now().Sub(e.FetchedAt) >= policy.Stale {
		return false
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	for prefix, at := range q.tombstones {
		if shared.UnderPrefix(key, prefix) && !e.FetchedAt.After(at) {
			return false
		}
	}

	return true
}

func (q *clientImpl) Invalidate(ctx context.Context, prefixes ...string) {
	now := q.now()

	q.mu.Lock()
	q.prune(now)
	for _, prefix := range prefixes {
		q.tombstones[prefix] = now
	}
	q.mu.Unlock()

	q.epoch.Add(1)

	for _, prefix := range prefixes {
		shared.InvalidateCaches(ctx, q.cache, q.cacheKey(prefix))
	}

	log.Debug().Strs("prefixes", prefixes).Msg("reads invalidated")
}

func (q *clientImpl) observeRetain(retain time.Duration) {
	q.mu.RLock()
	longer := retain > q.retain
	q.mu.RUnlock()

	if !longer {
		return
	}

	q.mu.Lock()
	if retain > q.retain {
		q.retain = retain
	}
	q.mu.Unlock()
}

// prune drops tombstones older than any entry the cache can still hold. Callers hold mu.
func (q *clientImpl) prune(now time.Time) {
	horizon := now.Add(-(q.retain + tombstoneGrace))

	for prefix, at := range q.tombstones {
		if at.Before(horizon) {
			delete(q.tombstones, prefix)
		}
	}
}

func (q *clientImpl) Clear(ctx context.Context) {
	now := q.now()

	q.mu.Lock()
	q.tombstones = map[string]time.Time{"": now}
	q.mu.Unlock()

	q.epoch.Add(1)

	shared.InvalidateCaches(ctx, q.cache, q.cacheKey(""))

	log.Info().Msg("all reads invalidated")
}

func (q *clientImpl) cacheKey(key string) string {
	return shared.BuildCacheKey(q.namespace, key)
}

func decode(raw json.RawMessage, dest any) error {
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode cached read: %w", err)
	}

	return nil
}

// Fetch is the typed form of Client.Read.
func Fetch[T any](ctx context.Context, c Client, key string, policy Policy, fn func(ctx context.Context) (T, error)) (res T, err error) {
	err = c.Read(ctx, key, policy, &res, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})

	return res, err
}

// All runs fn for every id concurrently and returns the results in the order of ids.
// Any failure fails the whole join, a partial result is never returned.
func All[K, T any](ctx context.Context, ids []K, fn func(ctx context.Context, id K) (T, error)) ([]T, error) {
	group, ctx := errgroup.WithContext(ctx)
	res := make([]T, len(ids))

	for i, id := range ids {
		group.Go(func() error {
			value, err := fn(ctx, id)
			if err != nil {
				return err
			}

			res[i] = value

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return res, nil
}
