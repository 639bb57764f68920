package postgres

import (
	"context"
	"database/sql"
	"errors"

	"explorewithme/internal/domain"
)

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepository(db *sql.DB) domain.CategoryRepository {
	return &categoryRepository{
		DB: db,
	}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, c.Name).Scan(&c.ID); err != nil {
		return mapConstraintError(err, "category name must be unique")
	}
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	query := `UPDATE categories SET name = $1 WHERE id = $2`
	res, err := conn(ctx, r.DB).ExecContext(ctx, query, c.Name, c.ID)
	if err != nil {
		return mapConstraintError(err, "category name must be unique")
	}
	return checkAffected(res)
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return mapConstraintError(err, "category is referenced by events")
	}
	return checkAffected(res)
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `SELECT id, name FROM categories WHERE id = $1`
	c := &domain.Category{}
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context, page domain.PaginationParams) ([]*domain.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
