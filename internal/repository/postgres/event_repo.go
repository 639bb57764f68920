package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"explorewithme/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventSelect = `
		SELECT e.id, e.title, e.annotation, e.description,
			c.id, c.name, u.id, u.name, l.id, l.lat, l.lon,
			e.event_date, e.created_on, e.published_on, e.paid, e.participant_limit,
			e.request_moderation, e.confirmed_requests, e.state
		FROM events e
		JOIN categories c ON c.id = e.category_id
		JOIN users u ON u.id = e.initiator_id
		JOIN locations l ON l.id = e.location_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var publishedNull sql.NullTime
	var state string
	err := row.Scan(
		&e.ID, &e.Title, &e.Annotation, &e.Description,
		&e.Category.ID, &e.Category.Name, &e.Initiator.ID, &e.Initiator.Name,
		&e.Location.ID, &e.Location.Lat, &e.Location.Lon,
		&e.EventDate, &e.CreatedOn, &publishedNull, &e.Paid, &e.ParticipantLimit,
		&e.RequestModeration, &e.ConfirmedRequests, &state,
	)
	if err != nil {
		return nil, err
	}
	if publishedNull.Valid {
		e.PublishedOn = &publishedNull.Time
	}
	e.State = domain.EventState(state)
	return e, nil
}

func (r *eventRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.Event, error) {
	e, err := scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) queryMany(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, annotation, description, category_id, initiator_id, location_id,
			event_date, created_on, published_on, paid, participant_limit, request_moderation,
			confirmed_requests, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query,
		e.Title, e.Annotation, e.Description, e.Category.ID, e.Initiator.ID, e.Location.ID,
		e.EventDate, e.CreatedOn, e.PublishedOn, e.Paid, e.ParticipantLimit, e.RequestModeration,
		e.ConfirmedRequests, string(e.State),
	).Scan(&e.ID)
	if err != nil {
		return mapConstraintError(err, "event references a missing category, user or location")
	}
	return nil
}

// Update writes the editable columns and the state. confirmed_requests is
// owned by UpdateConfirmedRequests.
func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, annotation = $2, description = $3, category_id = $4, location_id = $5,
			event_date = $6, published_on = $7, paid = $8, participant_limit = $9,
			request_moderation = $10, state = $11
		WHERE id = $12
	`
	res, err := conn(ctx, r.DB).ExecContext(ctx, query,
		e.Title, e.Annotation, e.Description, e.Category.ID, e.Location.ID,
		e.EventDate, e.PublishedOn, e.Paid, e.ParticipantLimit,
		e.RequestModeration, string(e.State), e.ID,
	)
	if err != nil {
		return mapConstraintError(err, "event references a missing category or location")
	}
	return checkAffected(res)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return r.queryOne(ctx, eventSelect+` WHERE e.id = $1`, id)
}

func (r *eventRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	return r.queryOne(ctx, eventSelect+` WHERE e.id = $1 FOR UPDATE OF e`, id)
}

func (r *eventRepository) GetByIDAndInitiator(ctx context.Context, id, initiatorID int64) (*domain.Event, error) {
	return r.queryOne(ctx, eventSelect+` WHERE e.id = $1 AND e.initiator_id = $2`, id, initiatorID)
}

func (r *eventRepository) GetByIDAndState(ctx context.Context, id int64, state domain.EventState) (*domain.Event, error) {
	return r.queryOne(ctx, eventSelect+` WHERE e.id = $1 AND e.state = $2`, id, string(state))
}

func (r *eventRepository) ListByInitiator(ctx context.Context, initiatorID int64, page domain.PaginationParams) ([]*domain.Event, error) {
	return r.queryMany(ctx, eventSelect+` WHERE e.initiator_id = $1 ORDER BY e.id LIMIT $2 OFFSET $3`,
		initiatorID, page.Limit(), page.Offset())
}

func (r *eventRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return []*domain.Event{}, nil
	}
	return r.queryMany(ctx, eventSelect+` WHERE e.id = ANY($1) ORDER BY e.id`, pq.Array(ids))
}

// Search builds the WHERE clause from the non-empty filter fields.
func (r *eventRepository) Search(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Text != "" {
		p := arg("%" + f.Text + "%")
		conds = append(conds, fmt.Sprintf("(e.annotation ILIKE %s OR e.description ILIKE %s)", p, p))
	}
	if len(f.UserIDs) > 0 {
		conds = append(conds, "e.initiator_id = ANY("+arg(pq.Array(f.UserIDs))+")")
	}
	if len(f.States) > 0 {
		states := make([]string, len(f.States))
		for i, s := range f.States {
			states[i] = string(s)
		}
		conds = append(conds, "e.state = ANY("+arg(pq.Array(states))+")")
	}
	if len(f.CategoryIDs) > 0 {
		conds = append(conds, "e.category_id = ANY("+arg(pq.Array(f.CategoryIDs))+")")
	}
	if f.Paid != nil {
		conds = append(conds, "e.paid = "+arg(*f.Paid))
	}
	if f.RangeStart != nil {
		conds = append(conds, "e.event_date >= "+arg(*f.RangeStart))
	}
	if f.RangeEnd != nil {
		conds = append(conds, "e.event_date <= "+arg(*f.RangeEnd))
	}
	if f.OnlyAvailable {
		conds = append(conds, "(e.participant_limit = 0 OR e.confirmed_requests < e.participant_limit)")
	}

	var b strings.Builder
	b.WriteString(eventSelect)
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	if f.Sort == domain.EventSortDate {
		b.WriteString(" ORDER BY e.event_date DESC")
	} else {
		b.WriteString(" ORDER BY e.id")
	}
	b.WriteString(" LIMIT " + arg(f.Page.Limit()))
	b.WriteString(" OFFSET " + arg(f.Page.Offset()))

	return r.queryMany(ctx, b.String(), args...)
}

func (r *eventRepository) ExistsByCategory(ctx context.Context, categoryID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE category_id = $1)`
	var exists bool
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, categoryID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *eventRepository) UpdateConfirmedRequests(ctx context.Context, id int64, confirmed int) error {
	query := `UPDATE events SET confirmed_requests = $1 WHERE id = $2`
	res, err := conn(ctx, r.DB).ExecContext(ctx, query, confirmed, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
