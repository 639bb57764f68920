package postgres

import (
	"context"
	"database/sql"
	"errors"

	"explorewithme/internal/domain"
)

type locationRepository struct {
	DB *sql.DB
}

func NewLocationRepository(db *sql.DB) domain.LocationRepository {
	return &locationRepository{
		DB: db,
	}
}

func (r *locationRepository) FindByCoordinates(ctx context.Context, lat, lon float64) (*domain.Location, error) {
	query := `SELECT id, lat, lon FROM locations WHERE lat = $1 AND lon = $2`
	loc := &domain.Location{}
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, lat, lon).Scan(&loc.ID, &loc.Lat, &loc.Lon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return loc, nil
}

// Create inserts loc. A concurrent insert of the same coordinates resolves to the existing row.
func (r *locationRepository) Create(ctx context.Context, loc *domain.Location) error {
	query := `
		INSERT INTO locations (lat, lon)
		VALUES ($1, $2)
		ON CONFLICT (lat, lon) DO UPDATE SET lat = EXCLUDED.lat
		RETURNING id
	`
	return conn(ctx, r.DB).QueryRowContext(ctx, query, loc.Lat, loc.Lon).Scan(&loc.ID)
}
