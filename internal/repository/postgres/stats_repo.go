package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"explorewithme/internal/domain"
)

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &statsRepository{
		DB: db,
	}
}

func (r *statsRepository) SaveHit(ctx context.Context, hit *domain.EndpointHit) error {
	query := `
		INSERT INTO endpoint_hits (app, uri, ip, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, hit.App, hit.URI, hit.IP, hit.Timestamp).Scan(&hit.ID)
}

func (r *statsRepository) GetStats(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	count := "COUNT(ip)"
	if q.Unique {
		count = "COUNT(DISTINCT ip)"
	}
	query := fmt.Sprintf(`
		SELECT app, uri, %s AS hits
		FROM endpoint_hits
		WHERE timestamp BETWEEN $1 AND $2
			AND (cardinality($3::text[]) = 0 OR uri = ANY($3))
		GROUP BY app, uri
		ORDER BY hits DESC
	`, count)
	uris := q.URIs
	if uris == nil {
		uris = []string{}
	}
	rows, err := r.DB.QueryContext(ctx, query, q.Start, q.End, pq.Array(uris))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.ViewStats{}
	for rows.Next() {
		var s domain.ViewStats
		if err := rows.Scan(&s.App, &s.URI, &s.Hits); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
