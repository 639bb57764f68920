package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

type commentService struct {
	commentRepo    domain.CommentRepository
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
	now            func() time.Time
}

func NewCommentService(commentRepo domain.CommentRepository,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	timeout time.Duration,
) domain.CommentService {
	return &commentService{
		commentRepo:    commentRepo,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// Create adds a comment to a published event. Only the initiator may reply to an existing comment.
func (s *commentService) Create(ctx context.Context, userID, eventID int64, in domain.NewCommentInput) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, "User", userID)
	}
	event, err := s.eventRepo.GetByIDAndState(ctx, eventID, domain.EventStatePublished)
	if err != nil {
		return nil, lookupErr(err, "Event", eventID)
	}
	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, lookupErr(err, "Comment", *in.ParentID)
		}
		if parent.EventID != eventID {
			return nil, domain.Conflict(domain.ReasonConflict, "The parent comment belongs to another event")
		}
		if event.Initiator.ID != userID {
			return nil, domain.Conflict(domain.ReasonConflict, "Only the event organizer can respond to comments")
		}
	}
	c := &domain.Comment{
		Text:     strings.TrimSpace(in.Text),
		EventID:  eventID,
		Author:   user.Short(),
		ParentID: in.ParentID,
		Created:  s.now(),
		Replies:  []*domain.Comment{},
	}
	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

func (s *commentService) authored(ctx context.Context, userID, commentID int64) (*domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, lookupErr(err, "Comment", commentID)
	}
	if c.Author.ID != userID {
		return nil, domain.Conflict(domain.ReasonConflict, "Only the author can change the comment")
	}
	return c, nil
}

func (s *commentService) Update(ctx context.Context, userID, commentID int64, text string) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.authored(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	c.Text = strings.TrimSpace(text)
	c.Updated = &now
	if err := s.commentRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, userID, commentID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.authored(ctx, userID, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return lookupErr(err, "Comment", commentID)
	}
	return nil
}

func (s *commentService) DeleteByAdmin(ctx context.Context, commentID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return lookupErr(err, "Comment", commentID)
	}
	return nil
}

func (s *commentService) GetByID(ctx context.Context, commentID int64) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, lookupErr(err, "Comment", commentID)
	}
	return c, nil
}

func (s *commentService) Search(ctx context.Context, text string, page domain.PaginationParams) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.commentRepo.Search(ctx, strings.TrimSpace(text), page)
}

// ListByEvent returns a page of top-level comments with their replies attached.
func (s *commentService) ListByEvent(ctx context.Context, eventID int64, page domain.PaginationParams) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByIDAndState(ctx, eventID, domain.EventStatePublished); err != nil {
		return nil, lookupErr(err, "Event", eventID)
	}
	top, err := s.commentRepo.ListTopLevelByEvent(ctx, eventID, page)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	ids := make([]int64, len(top))
	byID := make(map[int64]*domain.Comment, len(top))
	for i, c := range top {
		ids[i] = c.ID
		c.Replies = []*domain.Comment{}
		byID[c.ID] = c
	}
	replies, err := s.commentRepo.ListReplies(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	for _, r := range replies {
		if r.ParentID == nil {
			continue
		}
		if parent, ok := byID[*r.ParentID]; ok {
			parent.Replies = append(parent.Replies, r)
		}
	}
	return top, nil
}
