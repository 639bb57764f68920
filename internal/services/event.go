package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"explorewithme/internal/domain"
)

const eventsURI = "/events"

type eventService struct {
	tx             domain.Transactor
	eventRepo      domain.EventRepository
	categoryRepo   domain.CategoryRepository
	locationRepo   domain.LocationRepository
	userRepo       domain.UserRepository
	stats          domain.ViewStatsRecorder
	emailService   domain.EmailService
	logger         *slog.Logger
	appName        string
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEventService(tx domain.Transactor,
	eventRepo domain.EventRepository,
	categoryRepo domain.CategoryRepository,
	locationRepo domain.LocationRepository,
	userRepo domain.UserRepository,
	stats domain.ViewStatsRecorder,
	emailService domain.EmailService,
	logger *slog.Logger,
	appName string,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		tx:             tx,
		eventRepo:      eventRepo,
		categoryRepo:   categoryRepo,
		locationRepo:   locationRepo,
		userRepo:       userRepo,
		stats:          stats,
		emailService:   emailService,
		logger:         logger,
		appName:        appName,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *eventService) Create(ctx context.Context, userID int64, in domain.NewEventInput) (*domain.Event, error) {
	now := s.now()
	if err := domain.CheckEventDate(in.EventDate, now, domain.OwnerLeadTime); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event := &domain.Event{
		Title:             in.Title,
		Annotation:        in.Annotation,
		Description:       in.Description,
		EventDate:         in.EventDate,
		CreatedOn:         now,
		Paid:              in.Paid,
		ParticipantLimit:  in.ParticipantLimit,
		RequestModeration: in.RequestModeration,
		State:             domain.EventStatePending,
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return lookupErr(err, "User", userID)
		}
		event.Initiator = user.Short()
		category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
		if err != nil {
			return lookupErr(err, "Category", in.CategoryID)
		}
		event.Category = *category
		loc, err := s.internLocation(ctx, in.Location)
		if err != nil {
			return err
		}
		event.Location = *loc
		if err := s.eventRepo.Create(ctx, event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetByInitiator(ctx context.Context, userID, eventID int64) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, lookupErr(err, "User", userID)
	}
	event, err := s.eventRepo.GetByIDAndInitiator(ctx, eventID, userID)
	if err != nil {
		return nil, lookupErr(err, "Event", eventID)
	}
	s.attachViews(ctx, []*domain.Event{event})
	return event, nil
}

func (s *eventService) ListByInitiator(ctx context.Context, userID int64, page domain.PaginationParams) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, lookupErr(err, "User", userID)
	}
	events, err := s.eventRepo.ListByInitiator(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	s.attachViews(ctx, events)
	return events, nil
}

// UpdateByInitiator applies an owner edit under the event row lock. Published
// events are immutable for the owner; the resulting eventDate must respect the
// owner lead time.
func (s *eventService) UpdateByInitiator(ctx context.Context, userID, eventID int64, patch domain.EventPatch) (*domain.Event, error) {
	now := s.now()
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var event *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
			return lookupErr(err, "User", userID)
		}
		var err error
		event, err = s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return lookupErr(err, "Event", eventID)
		}
		if event.Initiator.ID != userID {
			return lookupErr(domain.ErrNotFound, "Event", eventID)
		}
		if err := event.CheckEditable(domain.ActorOwner); err != nil {
			return err
		}
		if err := s.applyPatch(ctx, event, patch); err != nil {
			return err
		}
		if err := domain.CheckEventDate(event.EventDate, now, domain.OwnerLeadTime); err != nil {
			return err
		}
		if patch.StateAction != nil {
			if err := event.ApplyAction(domain.ActorOwner, *patch.StateAction, now); err != nil {
				return err
			}
		}
		if err := s.eventRepo.Update(ctx, event); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateByAdmin applies an admin edit and moderation action. The admin lead
// time is enforced when the date changes or the event is being published.
func (s *eventService) UpdateByAdmin(ctx context.Context, eventID int64, patch domain.EventPatch) (*domain.Event, error) {
	now := s.now()
	if patch.EventDate != nil {
		if err := domain.CheckEventDate(*patch.EventDate, now, domain.AdminLeadTime); err != nil {
			return nil, err
		}
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var event *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		event, err = s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return lookupErr(err, "Event", eventID)
		}
		if err := s.applyPatch(ctx, event, patch); err != nil {
			return err
		}
		if patch.StateAction != nil {
			if err := event.ApplyAction(domain.ActorAdmin, *patch.StateAction, now); err != nil {
				return err
			}
			if *patch.StateAction == domain.StateActionPublish {
				if err := domain.CheckEventDate(event.EventDate, now, domain.AdminLeadTime); err != nil {
					return err
				}
			}
		}
		if err := s.eventRepo.Update(ctx, event); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if patch.StateAction != nil {
		s.notifyInitiator(ctx, event)
	}
	s.attachViews(ctx, []*domain.Event{event})
	return event, nil
}

func (s *eventService) SearchAdmin(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	if err := filter.CheckRange(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	s.attachViews(ctx, events)
	return events, nil
}

// SearchPublished lists published events only. Without a date range it shows
// events that have not started yet.
func (s *eventService) SearchPublished(ctx context.Context, filter domain.EventFilter, clientIP string) ([]*domain.Event, error) {
	if err := filter.CheckRange(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	filter.States = []domain.EventState{domain.EventStatePublished}
	filter.UserIDs = nil
	if filter.RangeStart == nil && filter.RangeEnd == nil {
		filter.RangeStart = &now
	}
	s.recordHit(ctx, eventsURI, clientIP, now)

	events, err := s.eventRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	s.attachViews(ctx, events)
	if filter.Sort == domain.EventSortViews {
		sort.SliceStable(events, func(i, j int) bool { return events[i].Views > events[j].Views })
	}
	return events, nil
}

func (s *eventService) GetPublished(ctx context.Context, eventID int64, clientIP string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByIDAndState(ctx, eventID, domain.EventStatePublished)
	if err != nil {
		return nil, lookupErr(err, "Event", eventID)
	}
	s.recordHit(ctx, eventURI(eventID), clientIP, s.now())
	s.attachViews(ctx, []*domain.Event{event})
	return event, nil
}

// applyPatch merges the scalar fields and resolves category and location.
func (s *eventService) applyPatch(ctx context.Context, event *domain.Event, patch domain.EventPatch) error {
	event.Merge(patch)
	if patch.CategoryID != nil && *patch.CategoryID != event.Category.ID {
		category, err := s.categoryRepo.GetByID(ctx, *patch.CategoryID)
		if err != nil {
			return lookupErr(err, "Category", *patch.CategoryID)
		}
		event.Category = *category
	}
	if patch.Location != nil {
		loc, err := s.internLocation(ctx, *patch.Location)
		if err != nil {
			return err
		}
		event.Location = *loc
	}
	return nil
}

// internLocation returns the stored location with exactly these coordinates, creating it on a miss.
func (s *eventService) internLocation(ctx context.Context, in domain.Location) (*domain.Location, error) {
	loc, err := s.locationRepo.FindByCoordinates(ctx, in.Lat, in.Lon)
	if err == nil {
		return loc, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find location: %w", err)
	}
	loc = &domain.Location{Lat: in.Lat, Lon: in.Lon}
	if err := s.locationRepo.Create(ctx, loc); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}
	return loc, nil
}

func (s *eventService) recordHit(ctx context.Context, uri, clientIP string, ts time.Time) {
	if s.stats == nil {
		return
	}
	hit := domain.EndpointHit{App: s.appName, URI: uri, IP: clientIP, Timestamp: ts}
	if err := s.stats.RecordHit(ctx, hit); err != nil {
		s.logger.WarnContext(ctx, "record hit failed", "uri", uri, "err", err)
	}
}

// attachViews fills Views for published events from unique-IP hits. Stats
// failures leave the views at zero.
func (s *eventService) attachViews(ctx context.Context, events []*domain.Event) {
	if s.stats == nil {
		return
	}
	var uris []string
	var start time.Time
	for _, e := range events {
		if e.State != domain.EventStatePublished {
			continue
		}
		uris = append(uris, eventURI(e.ID))
		if start.IsZero() || e.CreatedOn.Before(start) {
			start = e.CreatedOn
		}
	}
	if len(uris) == 0 {
		return
	}
	stats, err := s.stats.ViewCounts(ctx, domain.StatsQuery{Start: start, End: s.now(), URIs: uris, Unique: true})
	if err != nil {
		s.logger.WarnContext(ctx, "load view stats failed", "err", err)
		return
	}
	hits := make(map[string]int64, len(stats))
	for _, st := range stats {
		hits[st.URI] += st.Hits
	}
	for _, e := range events {
		e.Views = hits[eventURI(e.ID)]
	}
}

// notifyInitiator emails the initiator about a moderation decision. Failures are logged only.
func (s *eventService) notifyInitiator(ctx context.Context, event *domain.Event) {
	if s.emailService == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, event.Initiator.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "load initiator for notification", "event_id", event.ID, "err", err)
		return
	}
	data := &domain.EventModeratedEmailData{
		Email:      user.Email,
		Name:       user.Name,
		EventID:    event.ID,
		EventTitle: event.Title,
		State:      event.State,
	}
	if err := s.emailService.SendEventModerated(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "event moderation notification failed", "event_id", event.ID, "err", err)
	}
}

func eventURI(id int64) string {
	return eventsURI + "/" + strconv.FormatInt(id, 10)
}
