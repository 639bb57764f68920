package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"explorewithme/internal/domain"
)

type compilationService struct {
	tx              domain.Transactor
	compilationRepo domain.CompilationRepository
	eventRepo       domain.EventRepository
	contextTimeout  time.Duration
}

func NewCompilationService(tx domain.Transactor,
	compilationRepo domain.CompilationRepository,
	eventRepo domain.EventRepository,
	timeout time.Duration,
) domain.CompilationService {
	return &compilationService{
		tx:              tx,
		compilationRepo: compilationRepo,
		eventRepo:       eventRepo,
		contextTimeout:  timeout,
	}
}

func (s *compilationService) Create(ctx context.Context, in domain.NewCompilationInput) (*domain.Compilation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c := &domain.Compilation{
		Title:    strings.TrimSpace(in.Title),
		Pinned:   in.Pinned,
		EventIDs: uniqueIDs(in.EventIDs),
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		events, err := s.loadEvents(ctx, c.EventIDs)
		if err != nil {
			return err
		}
		c.Events = events
		if err := s.compilationRepo.Create(ctx, c); err != nil {
			return fmt.Errorf("create compilation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *compilationService) Update(ctx context.Context, id int64, patch domain.CompilationPatch) (*domain.Compilation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var c *domain.Compilation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.compilationRepo.GetByID(ctx, id)
		if err != nil {
			return lookupErr(err, "Compilation", id)
		}
		if patch.Title != nil {
			c.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Pinned != nil {
			c.Pinned = *patch.Pinned
		}
		if patch.SetEvents {
			c.EventIDs = uniqueIDs(patch.EventIDs)
		}
		c.Events, err = s.loadEvents(ctx, c.EventIDs)
		if err != nil {
			return err
		}
		if err := s.compilationRepo.Update(ctx, c); err != nil {
			return fmt.Errorf("update compilation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *compilationService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.compilationRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, "Compilation", id)
	}
	return nil
}

func (s *compilationService) GetByID(ctx context.Context, id int64) (*domain.Compilation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c, err := s.compilationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Compilation", id)
	}
	if err := s.attachEvents(ctx, []*domain.Compilation{c}); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *compilationService) List(ctx context.Context, pinned *bool, page domain.PaginationParams) ([]*domain.Compilation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	comps, err := s.compilationRepo.List(ctx, pinned, page)
	if err != nil {
		return nil, fmt.Errorf("list compilations: %w", err)
	}
	if err := s.attachEvents(ctx, comps); err != nil {
		return nil, err
	}
	return comps, nil
}

// loadEvents returns the events with the given ids and fails with NotFound if any is missing.
func (s *compilationService) loadEvents(ctx context.Context, ids []int64) ([]*domain.Event, error) {
	events, err := s.eventRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	if len(events) != len(ids) {
		found := make(map[int64]struct{}, len(events))
		for _, e := range events {
			found[e.ID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				return nil, domain.NotFoundf("Event with id=%d was not found", id)
			}
		}
	}
	return events, nil
}

// attachEvents loads the events of all compilations with one query.
func (s *compilationService) attachEvents(ctx context.Context, comps []*domain.Compilation) error {
	var ids []int64
	for _, c := range comps {
		ids = append(ids, c.EventIDs...)
	}
	events, err := s.eventRepo.ListByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	byID := make(map[int64]*domain.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	for _, c := range comps {
		c.Events = make([]*domain.Event, 0, len(c.EventIDs))
		for _, id := range c.EventIDs {
			if e, ok := byID[id]; ok {
				c.Events = append(c.Events, e)
			}
		}
	}
	return nil
}
