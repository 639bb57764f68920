package domain

import (
	"context"
	"fmt"
	"time"
)

// EventState is the moderation state of an event.
type EventState string

const (
	EventStatePending   EventState = "PENDING"
	EventStatePublished EventState = "PUBLISHED"
	EventStateCanceled  EventState = "CANCELED"
)

// Valid reports whether s is a known state.
func (s EventState) Valid() bool {
	switch s {
	case EventStatePending, EventStatePublished, EventStateCanceled:
		return true
	}
	return false
}

// StateAction is a requested state change carried by an update request.
type StateAction string

const (
	StateActionSendToReview StateAction = "SEND_TO_REVIEW"
	StateActionCancelReview StateAction = "CANCEL_REVIEW"
	StateActionPublish      StateAction = "PUBLISH_EVENT"
	StateActionReject       StateAction = "REJECT_EVENT"
)

// Actor identifies who is changing an event.
type Actor string

const (
	ActorOwner Actor = "owner"
	ActorAdmin Actor = "admin"
)

// Minimum distance between now and eventDate for create and update.
const (
	OwnerLeadTime = 2 * time.Hour
	AdminLeadTime = time.Hour
)

// LeadTime returns the minimum lead time enforced for actor.
func (a Actor) LeadTime() time.Duration {
	if a == ActorAdmin {
		return AdminLeadTime
	}
	return OwnerLeadTime
}

// Event is the event aggregate.
type Event struct {
	ID                int64
	Title             string
	Annotation        string
	Description       string
	Category          Category
	Initiator         UserShort
	Location          Location
	EventDate         time.Time
	CreatedOn         time.Time
	PublishedOn       *time.Time
	Paid              bool
	ParticipantLimit  int
	RequestModeration bool
	ConfirmedRequests int
	Views             int64
	State             EventState
}

// transition is one row of the lifecycle table.
type transition struct {
	from    []EventState
	to      EventState
	reason  string
	message string
}

type transitionKey struct {
	actor  Actor
	action StateAction
}

// Owner actions only require the event not to be published, so CANCEL_REVIEW
// on an already canceled event is accepted and leaves it CANCELED.
var transitions = map[transitionKey]transition{
	{ActorOwner, StateActionCancelReview}: {
		from: []EventState{EventStatePending, EventStateCanceled},
		to:   EventStateCanceled,
	},
	{ActorOwner, StateActionSendToReview}: {
		from: []EventState{EventStatePending, EventStateCanceled},
		to:   EventStatePending,
	},
	{ActorAdmin, StateActionPublish}: {
		from:    []EventState{EventStatePending},
		to:      EventStatePublished,
		reason:  "Event is not PENDING",
		message: "An event can only be published if it is in a publish PENDING state",
	},
	{ActorAdmin, StateActionReject}: {
		from:    []EventState{EventStatePending, EventStateCanceled},
		to:      EventStateCanceled,
		reason:  "Event is already PUBLISHED",
		message: "Cannot cancel the event because it's not in the right state: PUBLISHED",
	},
}

// CheckEditable fails with Conflict when actor may not modify the event in its current state.
// Owners may only edit events that are not published; admins are gated per action.
func (e *Event) CheckEditable(actor Actor) error {
	if actor == ActorOwner && e.State == EventStatePublished {
		return Conflict("Event must not be published", "Only pending or canceled events can be changed")
	}
	return nil
}

// ApplyAction moves the event through the lifecycle table.
func (e *Event) ApplyAction(actor Actor, action StateAction, now time.Time) error {
	t, ok := transitions[transitionKey{actor, action}]
	if !ok {
		return Validation(fmt.Sprintf("Field: stateAction. Error: action %s is not allowed for %s. Value: %s", action, actor, action))
	}
	allowed := false
	for _, s := range t.from {
		if e.State == s {
			allowed = true
			break
		}
	}
	if !allowed {
		reason, message := t.reason, t.message
		if reason == "" {
			reason, message = "Event must not be published", "Only pending or canceled events can be changed"
		}
		return Conflict(reason, message)
	}
	e.State = t.to
	if t.to == EventStatePublished {
		published := now
		e.PublishedOn = &published
	}
	return nil
}

// CheckEventDate fails with Validation when date is earlier than now plus lead.
func CheckEventDate(date, now time.Time, lead time.Duration) error {
	if date.Before(now.Add(lead)) {
		return Validation(fmt.Sprintf("Field: eventDate. Error: must contain a date that has not yet occurred. Value: %s", FormatDateTime(date)))
	}
	return nil
}

// HasCapacity reports whether one more participant can be confirmed.
func (e *Event) HasCapacity() bool {
	return e.ParticipantLimit == 0 || e.ConfirmedRequests < e.ParticipantLimit
}

// RequiresModeration reports whether new requests wait for the owner.
func (e *Event) RequiresModeration() bool {
	return e.ParticipantLimit != 0 && e.RequestModeration
}

// Confirm increments the confirmed counter.
func (e *Event) Confirm() {
	e.ConfirmedRequests++
}

// Release decrements the confirmed counter without going below zero.
func (e *Event) Release() {
	if e.ConfirmedRequests > 0 {
		e.ConfirmedRequests--
	}
}

// NewEventInput carries the fields of a new event before category and location are resolved.
type NewEventInput struct {
	Title             string
	Annotation        string
	Description       string
	CategoryID        int64
	EventDate         time.Time
	Location          Location
	Paid              bool
	ParticipantLimit  int
	RequestModeration bool
}

// EventPatch is a partial update. Nil fields keep the stored value.
type EventPatch struct {
	Title             *string
	Annotation        *string
	Description       *string
	CategoryID        *int64
	EventDate         *time.Time
	Location          *Location
	Paid              *bool
	ParticipantLimit  *int
	RequestModeration *bool
	StateAction       *StateAction
}

// Merge copies the scalar fields present in p onto e. Category, location and
// state action are resolved by the caller.
func (e *Event) Merge(p EventPatch) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Annotation != nil {
		e.Annotation = *p.Annotation
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.EventDate != nil {
		e.EventDate = *p.EventDate
	}
	if p.Paid != nil {
		e.Paid = *p.Paid
	}
	if p.ParticipantLimit != nil {
		e.ParticipantLimit = *p.ParticipantLimit
	}
	if p.RequestModeration != nil {
		e.RequestModeration = *p.RequestModeration
	}
}

// EventSort orders public search results.
type EventSort string

const (
	EventSortDate  EventSort = "EVENT_DATE"
	EventSortViews EventSort = "VIEWS"
)

// EventFilter selects events for admin and public search.
type EventFilter struct {
	Text          string
	UserIDs       []int64
	States        []EventState
	CategoryIDs   []int64
	Paid          *bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	OnlyAvailable bool
	Sort          EventSort
	Page          PaginationParams
}

// CheckRange fails with Validation when the end of the range precedes its start.
func (f EventFilter) CheckRange() error {
	if f.RangeStart != nil && f.RangeEnd != nil && f.RangeEnd.Before(*f.RangeStart) {
		return Validation("The end time cannot be earlier than the start time")
	}
	return nil
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	// GetByIDForUpdate locks the event row until the enclosing transaction ends.
	GetByIDForUpdate(ctx context.Context, id int64) (*Event, error)
	GetByIDAndInitiator(ctx context.Context, id, initiatorID int64) (*Event, error)
	GetByIDAndState(ctx context.Context, id int64, state EventState) (*Event, error)
	ListByInitiator(ctx context.Context, initiatorID int64, page PaginationParams) ([]*Event, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*Event, error)
	Search(ctx context.Context, filter EventFilter) ([]*Event, error)
	ExistsByCategory(ctx context.Context, categoryID int64) (bool, error)
	UpdateConfirmedRequests(ctx context.Context, id int64, confirmed int) error
}

// EventService is the event workflow.
type EventService interface {
	Create(ctx context.Context, userID int64, in NewEventInput) (*Event, error)
	GetByInitiator(ctx context.Context, userID, eventID int64) (*Event, error)
	ListByInitiator(ctx context.Context, userID int64, page PaginationParams) ([]*Event, error)
	UpdateByInitiator(ctx context.Context, userID, eventID int64, patch EventPatch) (*Event, error)
	UpdateByAdmin(ctx context.Context, eventID int64, patch EventPatch) (*Event, error)
	SearchAdmin(ctx context.Context, filter EventFilter) ([]*Event, error)
	SearchPublished(ctx context.Context, filter EventFilter, clientIP string) ([]*Event, error)
	GetPublished(ctx context.Context, eventID int64, clientIP string) (*Event, error)
}
