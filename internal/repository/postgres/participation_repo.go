package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"explorewithme/internal/domain"
)

type participationRepository struct {
	DB *sql.DB
}

func NewParticipationRepository(db *sql.DB) domain.ParticipationRepository {
	return &participationRepository{
		DB: db,
	}
}

const requestSelect = `
		SELECT id, created, event_id, requester_id, status
		FROM participation_requests
`

func scanRequest(row rowScanner) (*domain.ParticipationRequest, error) {
	req := &domain.ParticipationRequest{}
	var status string
	if err := row.Scan(&req.ID, &req.Created, &req.EventID, &req.RequesterID, &status); err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatus(status)
	return req, nil
}

func (r *participationRepository) Create(ctx context.Context, req *domain.ParticipationRequest) error {
	query := `
		INSERT INTO participation_requests (created, event_id, requester_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, req.Created, req.EventID, req.RequesterID, string(req.Status)).
		Scan(&req.ID)
	if err != nil {
		return mapConstraintError(err, "You can't add a repeat request")
	}
	return nil
}

func (r *participationRepository) getOne(ctx context.Context, query string, args ...any) (*domain.ParticipationRequest, error) {
	req, err := scanRequest(conn(ctx, r.DB).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *participationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.ParticipationRequest, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := []*domain.ParticipationRequest{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *participationRepository) GetByID(ctx context.Context, id int64) (*domain.ParticipationRequest, error) {
	return r.getOne(ctx, requestSelect+` WHERE id = $1`, id)
}

func (r *participationRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.ParticipationRequest, error) {
	return r.getOne(ctx, requestSelect+` WHERE id = $1 FOR UPDATE`, id)
}

func (r *participationRepository) GetByRequesterAndEvent(ctx context.Context, requesterID, eventID int64) (*domain.ParticipationRequest, error) {
	return r.getOne(ctx, requestSelect+` WHERE requester_id = $1 AND event_id = $2`, requesterID, eventID)
}

func (r *participationRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.ParticipationRequest, error) {
	return r.list(ctx, requestSelect+` WHERE event_id = $1 ORDER BY id`, eventID)
}

func (r *participationRepository) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.ParticipationRequest, error) {
	return r.list(ctx, requestSelect+` WHERE requester_id = $1 ORDER BY id`, requesterID)
}

// ListByIDs locks the returned rows when called inside a transaction.
func (r *participationRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.ParticipationRequest, error) {
	if len(ids) == 0 {
		return []*domain.ParticipationRequest{}, nil
	}
	return r.list(ctx, requestSelect+` WHERE id = ANY($1) ORDER BY id FOR UPDATE`, pq.Array(ids))
}

func (r *participationRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.RequestStatus) error {
	query := `UPDATE participation_requests SET status = $1 WHERE id = $2 AND status = $3`
	res, err := conn(ctx, r.DB).ExecContext(ctx, query, string(to), id, string(from))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.Conflict(domain.ReasonConflict, fmt.Sprintf("Request with id=%d is no longer %s", id, from))
	}
	return nil
}
