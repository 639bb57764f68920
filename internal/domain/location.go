package domain

import "context"

// Location is an interned pair of coordinates.
type Location struct {
	ID  int64   `json:"-"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LocationRepository stores locations deduplicated by exact coordinates.
type LocationRepository interface {
	// FindByCoordinates returns ErrNotFound when no location has exactly lat and lon.
	FindByCoordinates(ctx context.Context, lat, lon float64) (*Location, error)
	Create(ctx context.Context, loc *Location) error
}
