package domain

import (
	"context"
	"time"
)

// Comment is a remark on a published event. Replies reference a parent comment.
type Comment struct {
	ID       int64
	Text     string
	EventID  int64
	Author   UserShort
	ParentID *int64
	Created  time.Time
	Updated  *time.Time
	Replies  []*Comment
}

// NewCommentInput carries a new comment.
type NewCommentInput struct {
	Text     string
	ParentID *int64
}

// CommentRepository defines the interface for comment storage.
type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	// ListTopLevelByEvent returns comments without a parent, oldest first.
	ListTopLevelByEvent(ctx context.Context, eventID int64, page PaginationParams) ([]*Comment, error)
	ListReplies(ctx context.Context, parentIDs []int64) ([]*Comment, error)
	Search(ctx context.Context, text string, page PaginationParams) ([]*Comment, error)
}

// CommentService defines comment use cases.
type CommentService interface {
	Create(ctx context.Context, userID, eventID int64, in NewCommentInput) (*Comment, error)
	Update(ctx context.Context, userID, commentID int64, text string) (*Comment, error)
	Delete(ctx context.Context, userID, commentID int64) error
	DeleteByAdmin(ctx context.Context, commentID int64) error
	GetByID(ctx context.Context, commentID int64) (*Comment, error)
	Search(ctx context.Context, text string, page PaginationParams) ([]*Comment, error)
	ListByEvent(ctx context.Context, eventID int64, page PaginationParams) ([]*Comment, error)
}
