package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"explorewithme/internal/domain"
)

type participationService struct {
	tx             domain.Transactor
	requestRepo    domain.ParticipationRepository
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

func NewParticipationService(tx domain.Transactor,
	requestRepo domain.ParticipationRepository,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ParticipationService {
	return &participationService{
		tx:             tx,
		requestRepo:    requestRepo,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// Create admits userID to eventID. The event row stays locked from the
// capacity check until the counter is written.
func (s *participationService) Create(ctx context.Context, userID, eventID int64) (*domain.ParticipationRequest, error) {
	if eventID < 1 {
		return nil, domain.Validation("Incorrect data", fmt.Sprintf("Field: eventId. Error: must be positive. Value: %d", eventID))
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var created *domain.ParticipationRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
			return lookupErr(err, "User", userID)
		}
		event, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return lookupErr(err, "Event", eventID)
		}
		_, err = s.requestRepo.GetByRequesterAndEvent(ctx, userID, eventID)
		switch {
		case err == nil:
			return domain.Conflict(domain.ReasonIntegrity, "You can't add a repeat request")
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("find request: %w", err)
		}
		if event.State != domain.EventStatePublished {
			return domain.Conflict(domain.ReasonConflict, "You cannot participate in an unpublished event")
		}
		if !event.HasCapacity() {
			return domain.Conflict(domain.ReasonConflict, "The event has reached the limit of requests for participation")
		}
		if event.Initiator.ID == userID {
			return domain.Conflict(domain.ReasonConflict, "The event initiator cannot add a request to participate in his event")
		}

		req := &domain.ParticipationRequest{
			Created:     s.now(),
			EventID:     eventID,
			RequesterID: userID,
			Status:      domain.InitialRequestStatus(event),
		}
		if err := s.requestRepo.Create(ctx, req); err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		if req.Status == domain.RequestStatusConfirmed {
			event.Confirm()
			if err := s.eventRepo.UpdateConfirmedRequests(ctx, event.ID, event.ConfirmedRequests); err != nil {
				return fmt.Errorf("update confirmed requests: %w", err)
			}
		}
		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Cancel is idempotent: an already canceled request is returned unchanged.
// Locks are taken event first, then request, the same order as UpdateStatuses,
// and the status is re-read under both locks before it is changed.
func (s *participationService) Cancel(ctx context.Context, userID, requestID int64) (*domain.ParticipationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var result *domain.ParticipationRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
			return lookupErr(err, "User", userID)
		}
		req, err := s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return lookupErr(err, "Request", requestID)
		}
		if req.RequesterID != userID {
			return domain.Conflict(domain.ReasonConflict, "Request is not this user")
		}
		event, err := s.eventRepo.GetByIDForUpdate(ctx, req.EventID)
		if err != nil {
			return lookupErr(err, "Event", req.EventID)
		}
		req, err = s.requestRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return lookupErr(err, "Request", requestID)
		}
		result = req
		if req.Status == domain.RequestStatusCanceled {
			return nil
		}
		if req.Status == domain.RequestStatusConfirmed {
			event.Release()
			if err := s.eventRepo.UpdateConfirmedRequests(ctx, event.ID, event.ConfirmedRequests); err != nil {
				return fmt.Errorf("update confirmed requests: %w", err)
			}
		}
		if err := s.requestRepo.UpdateStatus(ctx, req.ID, req.Status, domain.RequestStatusCanceled); err != nil {
			return fmt.Errorf("cancel request: %w", err)
		}
		req.Status = domain.RequestStatusCanceled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *participationService) ListByRequester(ctx context.Context, userID int64) ([]*domain.ParticipationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, lookupErr(err, "User", userID)
	}
	reqs, err := s.requestRepo.ListByRequester(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return reqs, nil
}

func (s *participationService) ListByEvent(ctx context.Context, userID, eventID int64) ([]*domain.ParticipationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, lookupErr(err, "Event", eventID)
	}
	if event.Initiator.ID != userID {
		return nil, domain.Conflict(domain.ReasonConflict, "The user is not the initiator of the event")
	}
	reqs, err := s.requestRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return reqs, nil
}

// UpdateStatuses moderates a batch of pending requests. Every request is
// checked before any is changed, so the batch applies entirely or not at all.
// Confirmations are admitted in input order while capacity remains; the rest
// are rejected.
func (s *participationService) UpdateStatuses(ctx context.Context, userID, eventID int64, update domain.StatusUpdate) (*domain.StatusUpdateResult, error) {
	if update.Status != domain.RequestStatusConfirmed && update.Status != domain.RequestStatusRejected {
		return nil, domain.Validation(fmt.Sprintf("Field: status. Error: must be CONFIRMED or REJECTED. Value: %s", update.Status))
	}
	if len(update.RequestIDs) == 0 {
		return nil, domain.Validation("Field: requestIds. Error: must not be empty. Value: []")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	result := &domain.StatusUpdateResult{
		Confirmed: []*domain.ParticipationRequest{},
		Rejected:  []*domain.ParticipationRequest{},
	}
	var event *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		event, err = s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return lookupErr(err, "Event", eventID)
		}
		if event.Initiator.ID != userID {
			return domain.Conflict(domain.ReasonConflict, "The user is not the initiator of the event")
		}
		if !event.RequiresModeration() {
			return nil
		}
		if update.Status == domain.RequestStatusConfirmed && !event.HasCapacity() {
			return domain.Conflict(domain.ReasonConflict, "The participant limit has been reached")
		}

		ids := uniqueIDs(update.RequestIDs)
		found, err := s.requestRepo.ListByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("list requests: %w", err)
		}
		byID := make(map[int64]*domain.ParticipationRequest, len(found))
		for _, r := range found {
			byID[r.ID] = r
		}
		ordered := make([]*domain.ParticipationRequest, 0, len(ids))
		for _, id := range ids {
			r, ok := byID[id]
			if !ok || r.EventID != eventID {
				return domain.NotFoundf("Request with id=%d was not found", id)
			}
			if r.Status != domain.RequestStatusPending {
				return domain.Conflict(domain.ReasonConflict, "Status can be changed only for pending applications")
			}
			ordered = append(ordered, r)
		}

		for _, r := range ordered {
			if update.Status == domain.RequestStatusConfirmed && event.HasCapacity() {
				event.Confirm()
				r.Status = domain.RequestStatusConfirmed
				result.Confirmed = append(result.Confirmed, r)
			} else {
				r.Status = domain.RequestStatusRejected
				result.Rejected = append(result.Rejected, r)
			}
			if err := s.requestRepo.UpdateStatus(ctx, r.ID, domain.RequestStatusPending, r.Status); err != nil {
				return fmt.Errorf("update request %d: %w", r.ID, err)
			}
		}
		if len(result.Confirmed) > 0 {
			if err := s.eventRepo.UpdateConfirmedRequests(ctx, event.ID, event.ConfirmedRequests); err != nil {
				return fmt.Errorf("update confirmed requests: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifyRequesters(ctx, event, result)
	return result, nil
}

// notifyRequesters emails every moderated requester. Failures are logged only.
func (s *participationService) notifyRequesters(ctx context.Context, event *domain.Event, result *domain.StatusUpdateResult) {
	if s.emailService == nil {
		return
	}
	moderated := append(append([]*domain.ParticipationRequest{}, result.Confirmed...), result.Rejected...)
	if len(moderated) == 0 {
		return
	}
	ids := make([]int64, len(moderated))
	for i, r := range moderated {
		ids[i] = r.RequesterID
	}
	users, err := s.userRepo.List(ctx, ids, domain.PaginationParams{Size: len(ids)})
	if err != nil {
		s.logger.WarnContext(ctx, "load requesters for notification", "event_id", event.ID, "err", err)
		return
	}
	byID := make(map[int64]*domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, r := range moderated {
		u, ok := byID[r.RequesterID]
		if !ok {
			continue
		}
		data := &domain.RequestStatusEmailData{
			Email:      u.Email,
			Name:       u.Name,
			EventTitle: event.Title,
			RequestID:  r.ID,
			Status:     r.Status,
		}
		if err := s.emailService.SendRequestStatus(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "request status notification failed", "request_id", r.ID, "err", err)
		}
	}
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
