package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"explorewithme/internal/domain"
)

type compilationRepository struct {
	DB *sql.DB
}

func NewCompilationRepository(db *sql.DB) domain.CompilationRepository {
	return &compilationRepository{
		DB: db,
	}
}

// Create inserts the compilation and its event links. Call it inside a transaction.
func (r *compilationRepository) Create(ctx context.Context, c *domain.Compilation) error {
	query := `INSERT INTO compilations (title, pinned) VALUES ($1, $2) RETURNING id`
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, c.Title, c.Pinned).Scan(&c.ID); err != nil {
		return err
	}
	return r.linkEvents(ctx, c.ID, c.EventIDs)
}

// Update rewrites the compilation and replaces its event links. Call it inside a transaction.
func (r *compilationRepository) Update(ctx context.Context, c *domain.Compilation) error {
	res, err := conn(ctx, r.DB).ExecContext(ctx, `UPDATE compilations SET title = $1, pinned = $2 WHERE id = $3`, c.Title, c.Pinned, c.ID)
	if err != nil {
		return err
	}
	if err := checkAffected(res); err != nil {
		return err
	}
	if _, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM compilation_events WHERE compilation_id = $1`, c.ID); err != nil {
		return err
	}
	return r.linkEvents(ctx, c.ID, c.EventIDs)
}

func (r *compilationRepository) linkEvents(ctx context.Context, compilationID int64, eventIDs []int64) error {
	if len(eventIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO compilation_events (compilation_id, event_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`
	if _, err := conn(ctx, r.DB).ExecContext(ctx, query, compilationID, pq.Array(eventIDs)); err != nil {
		return mapConstraintError(err, "compilation references a missing event")
	}
	return nil
}

func (r *compilationRepository) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM compilations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *compilationRepository) GetByID(ctx context.Context, id int64) (*domain.Compilation, error) {
	query := `
		SELECT c.id, c.title, c.pinned, COALESCE(array_agg(ce.event_id ORDER BY ce.event_id) FILTER (WHERE ce.event_id IS NOT NULL), '{}')
		FROM compilations c
		LEFT JOIN compilation_events ce ON ce.compilation_id = c.id
		WHERE c.id = $1
		GROUP BY c.id
	`
	c, err := scanCompilation(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *compilationRepository) List(ctx context.Context, pinned *bool, page domain.PaginationParams) ([]*domain.Compilation, error) {
	query := `
		SELECT c.id, c.title, c.pinned, COALESCE(array_agg(ce.event_id ORDER BY ce.event_id) FILTER (WHERE ce.event_id IS NOT NULL), '{}')
		FROM compilations c
		LEFT JOIN compilation_events ce ON ce.compilation_id = c.id
		WHERE ($1::boolean IS NULL OR c.pinned = $1)
		GROUP BY c.id
		ORDER BY c.id
		LIMIT $2 OFFSET $3
	`
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, pinned, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comps := []*domain.Compilation{}
	for rows.Next() {
		c, err := scanCompilation(rows)
		if err != nil {
			return nil, err
		}
		comps = append(comps, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comps, nil
}

func scanCompilation(row rowScanner) (*domain.Compilation, error) {
	c := &domain.Compilation{}
	var ids pq.Int64Array
	if err := row.Scan(&c.ID, &c.Title, &c.Pinned, &ids); err != nil {
		return nil, err
	}
	c.EventIDs = []int64(ids)
	return c, nil
}
