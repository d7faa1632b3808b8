package query_test

import (
	"context"
	"errors"
	"seatpos/config"
	"seatpos/infras/otel/mocks"
	"seatpos/shared/cache"
	"seatpos/shared/query"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newClient(t *testing.T) (query.Client, *clock, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{}
	cfg.Cache.Namespace = "seatpos"

	c := query.New(cache.NewRedisCache(rdb, mocks.NewOtel()), cfg, mocks.NewOtel())
	clk := &clock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	query.SetClock(c, clk.Now)

	return c, clk, srv
}

var policy = query.Policy{Stale: 5 * time.Minute, Retain: 30 * time.Minute, Retry: 1}

type room struct {
	ID    string `json:"id"`
	Price int64  `json:"price"`
}

func counting(calls *atomic.Int32, value room) func(ctx context.Context) (room, error) {
	return func(_ context.Context) (room, error) {
		calls.Add(1)

		return value, nil
	}
}

func TestFetch_ServesFreshEntryFromCache(t *testing.T) {
	c, clk, srv := newClient(t)
	ctx := context.Background()

	var calls atomic.Int32

	first, err := query.Fetch(ctx, c, "room:detail:r-1", policy, counting(&calls, room{ID: "r-1", Price: 50000}))
	require.NoError(t, err)

	clk.Advance(time.Minute)

	second, err := query.Fetch(ctx, c, "room:detail:r-1", policy, counting(&calls, room{ID: "r-1", Price: 1}))
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, first, second)
	assert.True(t, srv.Exists("seatpos:room:detail:r-1"))
}

func TestFetch_RefetchesStaleEntry(t *testing.T) {
	c, clk, _ := newClient(t)
	ctx := context.Background()

	var calls atomic.Int32

	_, err := query.Fetch(ctx, c, "room:detail:r-1", policy, counting(&calls, room{ID: "r-1", Price: 50000}))
	require.NoError(t, err)

	clk.Advance(5 * time.Minute)

	got, err := query.Fetch(ctx, c, "room:detail:r-1", policy, counting(&calls, room{ID: "r-1", Price: 60000}))
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, int64(60000), got.Price)
}

func TestFetch_RetriesOnce(t *testing.T) {
	c, _, _ := newClient(t)

	var calls atomic.Int32

	got, err := query.Fetch(context.Background(), c, "room:all", policy, func(_ context.Context) ([]room, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("connection reset")
		}

		return []room{{ID: "r-1"}}, nil
	})

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_GivesUpAfterRetryBudget(t *testing.T) {
	c, _, srv := newClient(t)

	var calls atomic.Int32
	boom := errors.New("boom")

	_, err := query.Fetch(context.Background(), c, "room:all", policy, func(_ context.Context) ([]room, error) {
		calls.Add(1)

		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(2), calls.Load())
	assert.False(t, srv.Exists("seatpos:room:all"))
}

func TestFetch_SharesConcurrentReads(t *testing.T) {
	c, _, _ := newClient(t)

	var calls atomic.Int32

	release := make(chan struct{})
	fetch := func(_ context.Context) (room, error) {
		calls.Add(1)
		<-release

		return room{ID: "r-1"}, nil
	}

	var wg sync.WaitGroup

	for range 5 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			got, err := query.Fetch(context.Background(), c, "room:detail:r-1", policy, fetch)
			assert.NoError(t, err)
			assert.Equal(t, "r-1", got.ID)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestInvalidate_ForcesRefetchUnderPrefix(t *testing.T) {
	c, clk, srv := newClient(t)
	ctx := context.Background()

	var calls atomic.Int32

	_, err := query.Fetch(ctx, c, "booking:by-date:2024-01-01", policy, counting(&calls, room{ID: "old"}))
	require.NoError(t, err)
	_, err = query.Fetch(ctx, c, "room:detail:r-1", policy, counting(&calls, room{ID: "r-1"}))
	require.NoError(t, err)

	clk.Advance(time.Second)
	c.Invalidate(ctx, "booking:")
	clk.Advance(time.Second)

	assert.False(t, srv.Exists("seatpos:booking:by-date:2024-01-01"))
	assert.True(t, srv.Exists("seatpos:room:detail:r-1"))

	got, err := query.Fetch(ctx, c, "booking:by-date:2024-01-01", policy, counting(&calls, room{ID: "new"}))
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)

	_, err = query.Fetch(ctx, c, "room:detail:r-1", policy, counting(&calls, room{ID: "other"}))
	require.NoError(t, err)

	assert.Equal(t, int32(3), calls.Load())
}

func TestInvalidate_LeavesSiblingIDs(t *testing.T) {
	c, clk, srv := newClient(t)
	ctx := context.Background()

	var calls atomic.Int32

	for _, key := range []string{"booking:detail:1", "booking:detail:12"} {
		_, err := query.Fetch(ctx, c, key, policy, counting(&calls, room{ID: key}))
		require.NoError(t, err)
	}

	clk.Advance(time.Second)
	c.Invalidate(ctx, "booking:detail:1")
	clk.Advance(time.Second)

	assert.False(t, srv.Exists("seatpos:booking:detail:1"))
	assert.True(t, srv.Exists("seatpos:booking:detail:12"))

	got, err := query.Fetch(ctx, c, "booking:detail:12", policy, counting(&calls, room{ID: "refetched"}))
	require.NoError(t, err)
	assert.Equal(t, "booking:detail:12", got.ID)
	assert.Equal(t, int32(2), calls.Load())

	got, err = query.Fetch(ctx, c, "booking:detail:1", policy, counting(&calls, room{ID: "refetched"}))
	require.NoError(t, err)
	assert.Equal(t, "refetched", got.ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestInvalidate_ForgetsTombstonesPastRetention(t *testing.T) {
	c, clk, _ := newClient(t)
	ctx := context.Background()

	var calls atomic.Int32

	_, err := query.Fetch(ctx, c, "order:detail:o-1", policy, counting(&calls, room{ID: "o-1"}))
	require.NoError(t, err)

	for i := range 3000 {
		clk.Advance(time.Second)
		c.Invalidate(ctx, "order:detail:"+strconv.Itoa(i))
	}

	// retention plus a minute of grace, one tombstone per second
	assert.LessOrEqual(t, query.Tombstones(c), 31*60+1)

	clk.Advance(time.Second)
	c.Invalidate(ctx, "order:detail:o-1")
	clk.Advance(time.Second)

	got, err := query.Fetch(ctx, c, "order:detail:o-1", policy, counting(&calls, room{ID: "after"}))
	require.NoError(t, err)
	assert.Equal(t, "after", got.ID)
}

func TestInvalidate_HonouredWhenCacheCannotDelete(t *testing.T) {
	c, clk, srv := newClient(t)
	ctx := context.Background()

	var calls atomic.Int32

	_, err := query.Fetch(ctx, c, "order:detail:o-1", policy, counting(&calls, room{ID: "before"}))
	require.NoError(t, err)

	clk.Advance(time.Second)
	srv.SetError("LOADING")
	c.Invalidate(ctx, "order:detail:o-1")
	srv.SetError("")
	clk.Advance(time.Second)

	got, err := query.Fetch(ctx, c, "order:detail:o-1", policy, counting(&calls, room{ID: "after"}))
	require.NoError(t, err)

	assert.Equal(t, "after", got.ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClear_RefetchesEverything(t *testing.T) {
	c, clk, srv := newClient(t)
	ctx := context.Background()

	var calls atomic.Int32

	for _, key := range []string{"account:profile", "room:all:b-1"} {
		_, err := query.Fetch(ctx, c, key, policy, counting(&calls, room{ID: key}))
		require.NoError(t, err)
	}

	clk.Advance(time.Second)
	c.Clear(ctx)
	clk.Advance(time.Second)

	assert.Empty(t, srv.Keys())

	_, err := query.Fetch(ctx, c, "account:profile", policy, counting(&calls, room{ID: "again"}))
	require.NoError(t, err)

	assert.Equal(t, int32(3), calls.Load())
}

func TestFetch_WorksWithoutCache(t *testing.T) {
	c, _, srv := newClient(t)
	srv.Close()

	got, err := query.Fetch(context.Background(), c, "room:detail:r-1", policy, func(_ context.Context) (room, error) {
		return room{ID: "r-1"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "r-1", got.ID)
}

func TestAll_PreservesOrder(t *testing.T) {
	ids := []int{3, 1, 2}

	got, err := query.All(context.Background(), ids, func(_ context.Context, id int) (int, error) {
		time.Sleep(time.Duration(id) * 5 * time.Millisecond)

		return id * 10, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{30, 10, 20}, got)
}

func TestAll_FailsAsAWhole(t *testing.T) {
	boom := errors.New("detail failed")

	got, err := query.All(context.Background(), []string{"o-1", "o-2"}, func(_ context.Context, id string) (string, error) {
		if id == "o-2" {
			return "", boom
		}

		return id, nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}

func TestAll_Empty(t *testing.T) {
	got, err := query.All(context.Background(), []string(nil), func(_ context.Context, id string) (string, error) {
		return id, nil
	})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPolicies(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.StaleSeconds = 300
	cfg.Cache.RetainSeconds = 1800
	cfg.Cache.ClockStaleSeconds = 60
	cfg.Cache.ReadRetry = 1

	assert.Equal(t, query.Policy{Stale: 5 * time.Minute, Retain: 30 * time.Minute, Retry: 1}, query.DefaultPolicy(cfg))
	assert.Equal(t, time.Minute, query.ClockPolicy(cfg).Stale)
}
