package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"explorewithme/internal/domain"
)

type commentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) domain.CommentRepository {
	return &commentRepository{
		DB: db,
	}
}

const commentSelect = `
		SELECT cm.id, cm.text, cm.event_id, u.id, u.name, cm.parent_id, cm.created, cm.updated
		FROM comments cm
		JOIN users u ON u.id = cm.author_id
`

func scanComment(row rowScanner) (*domain.Comment, error) {
	c := &domain.Comment{}
	var parentNull sql.NullInt64
	var updatedNull sql.NullTime
	if err := row.Scan(&c.ID, &c.Text, &c.EventID, &c.Author.ID, &c.Author.Name, &parentNull, &c.Created, &updatedNull); err != nil {
		return nil, err
	}
	if parentNull.Valid {
		c.ParentID = &parentNull.Int64
	}
	if updatedNull.Valid {
		c.Updated = &updatedNull.Time
	}
	return c, nil
}

func (r *commentRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Comment, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `
		INSERT INTO comments (text, event_id, author_id, parent_id, created)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, c.Text, c.EventID, c.Author.ID, c.ParentID, c.Created).Scan(&c.ID)
	if err != nil {
		return mapConstraintError(err, "comment references a missing event, user or parent")
	}
	return nil
}

func (r *commentRepository) Update(ctx context.Context, c *domain.Comment) error {
	res, err := conn(ctx, r.DB).ExecContext(ctx, `UPDATE comments SET text = $1, updated = $2 WHERE id = $3`, c.Text, c.Updated, c.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	c, err := scanComment(conn(ctx, r.DB).QueryRowContext(ctx, commentSelect+` WHERE cm.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) ListTopLevelByEvent(ctx context.Context, eventID int64, page domain.PaginationParams) ([]*domain.Comment, error) {
	return r.list(ctx, commentSelect+` WHERE cm.event_id = $1 AND cm.parent_id IS NULL ORDER BY cm.created, cm.id LIMIT $2 OFFSET $3`,
		eventID, page.Limit(), page.Offset())
}

func (r *commentRepository) ListReplies(ctx context.Context, parentIDs []int64) ([]*domain.Comment, error) {
	if len(parentIDs) == 0 {
		return []*domain.Comment{}, nil
	}
	return r.list(ctx, commentSelect+` WHERE cm.parent_id = ANY($1) ORDER BY cm.created, cm.id`, pq.Array(parentIDs))
}

func (r *commentRepository) Search(ctx context.Context, text string, page domain.PaginationParams) ([]*domain.Comment, error) {
	return r.list(ctx, commentSelect+` WHERE cm.text ILIKE $1 ORDER BY cm.id LIMIT $2 OFFSET $3`,
		"%"+text+"%", page.Limit(), page.Offset())
}
