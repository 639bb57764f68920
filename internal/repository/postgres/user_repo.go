package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"explorewithme/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{
		DB: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, user.Name, user.Email).Scan(&user.ID); err != nil {
		return mapConstraintError(err, "email already in use")
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, name, email FROM users WHERE id = $1`
	u := &domain.User{}
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context, ids []int64, page domain.PaginationParams) ([]*domain.User, error) {
	var rows *sql.Rows
	var err error
	if len(ids) > 0 {
		query := `SELECT id, name, email FROM users WHERE id = ANY($1) ORDER BY id LIMIT $2 OFFSET $3`
		rows, err = conn(ctx, r.DB).QueryContext(ctx, query, pq.Array(ids), page.Limit(), page.Offset())
	} else {
		query := `SELECT id, name, email FROM users ORDER BY id LIMIT $1 OFFSET $2`
		rows, err = conn(ctx, r.DB).QueryContext(ctx, query, page.Limit(), page.Offset())
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		u := &domain.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
