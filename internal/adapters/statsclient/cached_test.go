package statsclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorewithme/internal/domain"
)

type memCache struct {
	data map[string][]byte
	ttls map[string]time.Duration
	err  error
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return v, nil
}

func (m *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

type countingRecorder struct {
	hits  int
	calls int
	stats []domain.ViewStats
	err   error
}

func (c *countingRecorder) RecordHit(ctx context.Context, hit domain.EndpointHit) error {
	c.hits++
	return nil
}

func (c *countingRecorder) ViewCounts(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	c.calls++
	return c.stats, c.err
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestCachedRecorder_ViewCounts(t *testing.T) {
	next := &countingRecorder{stats: []domain.ViewStats{{App: "ewm-main-service", URI: "/events/1", Hits: 3}}}
	cache := newMemCache()
	rec := NewCachedRecorder(next, cache, time.Minute, discard)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	q := domain.StatsQuery{Start: start, End: start.Add(time.Hour), URIs: []string{"/events/2", "/events/1"}, Unique: true}
	got, err := rec.ViewCounts(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, next.stats, got)
	assert.Equal(t, 1, next.calls)

	q.End = start.Add(2 * time.Hour)
	q.URIs = []string{"/events/1", "/events/2"}
	got, err = rec.ViewCounts(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, next.stats, got)
	assert.Equal(t, 1, next.calls, "second query with the same uri set is served from cache")
	assert.Equal(t, time.Minute, cache.ttls[viewsKey(q)])

	q.Unique = false
	_, err = rec.ViewCounts(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)

	require.NoError(t, rec.RecordHit(ctx, domain.EndpointHit{URI: "/events/1"}))
	assert.Equal(t, 1, next.hits)
}

func TestCachedRecorder_CacheFailureFallsThrough(t *testing.T) {
	next := &countingRecorder{stats: []domain.ViewStats{}}
	cache := newMemCache()
	cache.err = errors.New("connection refused")
	rec := NewCachedRecorder(next, cache, time.Minute, discard)

	_, err := rec.ViewCounts(context.Background(), domain.StatsQuery{URIs: []string{"/events/1"}})
	require.NoError(t, err)
	_, err = rec.ViewCounts(context.Background(), domain.StatsQuery{URIs: []string{"/events/1"}})
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)

	next.err = errors.New("stats down")
	_, err = rec.ViewCounts(context.Background(), domain.StatsQuery{URIs: []string{"/events/1"}})
	assert.Error(t, err)
}

func TestRedisCache(t *testing.T) {
	url := os.Getenv("EWM_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping Redis tests: EWM_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	cache, err := NewRedisCache(ctx, url, "ewm-test:")
	require.NoError(t, err)
	defer func() { _ = cache.Close() }()

	_, err = cache.Get(ctx, "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	v, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}
