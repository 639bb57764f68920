package domain

import (
	"context"
	"time"
)

// EndpointHit is one recorded request to a public endpoint.
type EndpointHit struct {
	ID        int64
	App       string
	URI       string
	IP        string
	Timestamp time.Time
}

// ViewStats is the aggregated hit count of one (app, uri) pair.
// swagger:model ViewStats
type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

// StatsQuery selects the hits to aggregate.
type StatsQuery struct {
	Start  time.Time
	End    time.Time
	URIs   []string
	Unique bool
}

// StatsRepository stores hits and aggregates them.
type StatsRepository interface {
	SaveHit(ctx context.Context, hit *EndpointHit) error
	GetStats(ctx context.Context, q StatsQuery) ([]ViewStats, error)
}

// StatsService is the stats server use case.
type StatsService interface {
	SaveHit(ctx context.Context, hit *EndpointHit) error
	GetStats(ctx context.Context, q StatsQuery) ([]ViewStats, error)
}

// ViewStatsRecorder is the main service's client of the stats server.
type ViewStatsRecorder interface {
	RecordHit(ctx context.Context, hit EndpointHit) error
	ViewCounts(ctx context.Context, q StatsQuery) ([]ViewStats, error)
}
