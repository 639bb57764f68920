package statsclient

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

// CachedRecorder serves view counts from a short-lived cache in front of another recorder.
// Hits always go straight through.
type CachedRecorder struct {
	next   domain.ViewStatsRecorder
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedRecorder(next domain.ViewStatsRecorder, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedRecorder {
	return &CachedRecorder{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (c *CachedRecorder) RecordHit(ctx context.Context, hit domain.EndpointHit) error {
	return c.next.RecordHit(ctx, hit)
}

// ViewCounts ignores q.End in the cache key; a cached answer is at most ttl old.
func (c *CachedRecorder) ViewCounts(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	key := viewsKey(q)
	if raw, err := c.cache.Get(ctx, key); err == nil {
		var stats []domain.ViewStats
		if err := json.Unmarshal(raw, &stats); err == nil {
			return stats, nil
		}
	} else if !errors.Is(err, ErrCacheMiss) {
		c.logger.WarnContext(ctx, "view cache read failed", "err", err)
	}

	stats, err := c.next.ViewCounts(ctx, q)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(stats); err == nil {
		if err := c.cache.Set(ctx, key, raw, c.ttl); err != nil {
			c.logger.WarnContext(ctx, "view cache write failed", "err", err)
		}
	}
	return stats, nil
}

func viewsKey(q domain.StatsQuery) string {
	uris := slices.Clone(q.URIs)
	slices.Sort(uris)
	return "views:" + strconv.FormatBool(q.Unique) + ":" + strconv.FormatInt(q.Start.Unix(), 10) + ":" + strings.Join(uris, ",")
}
