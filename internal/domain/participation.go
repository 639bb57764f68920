package domain

import (
	"context"
	"time"
)

// RequestStatus is the status of a participation request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusConfirmed RequestStatus = "CONFIRMED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCanceled  RequestStatus = "CANCELED"
)

// ParticipationRequest is a user's request to attend an event.
type ParticipationRequest struct {
	ID          int64
	Created     time.Time
	EventID     int64
	RequesterID int64
	Status      RequestStatus
}

// InitialRequestStatus computes the status of a new request for e.
func InitialRequestStatus(e *Event) RequestStatus {
	if e.RequiresModeration() {
		return RequestStatusPending
	}
	return RequestStatusConfirmed
}

// StatusUpdate is the owner's batch moderation command.
type StatusUpdate struct {
	RequestIDs []int64
	Status     RequestStatus
}

// StatusUpdateResult splits moderated requests by outcome.
type StatusUpdateResult struct {
	Confirmed []*ParticipationRequest
	Rejected  []*ParticipationRequest
}

// ParticipationRepository defines the interface for participation request storage.
type ParticipationRepository interface {
	Create(ctx context.Context, req *ParticipationRequest) error
	GetByID(ctx context.Context, id int64) (*ParticipationRequest, error)
	// GetByIDForUpdate locks the request row until the enclosing transaction ends.
	GetByIDForUpdate(ctx context.Context, id int64) (*ParticipationRequest, error)
	GetByRequesterAndEvent(ctx context.Context, requesterID, eventID int64) (*ParticipationRequest, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*ParticipationRequest, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]*ParticipationRequest, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*ParticipationRequest, error)
	// UpdateStatus moves the request from status from to status to. It fails
	// with Conflict when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id int64, from, to RequestStatus) error
}

// ParticipationService is the participation request engine.
type ParticipationService interface {
	Create(ctx context.Context, userID, eventID int64) (*ParticipationRequest, error)
	Cancel(ctx context.Context, userID, requestID int64) (*ParticipationRequest, error)
	ListByRequester(ctx context.Context, userID int64) ([]*ParticipationRequest, error)
	ListByEvent(ctx context.Context, userID, eventID int64) ([]*ParticipationRequest, error)
	UpdateStatuses(ctx context.Context, userID, eventID int64, update StatusUpdate) (*StatusUpdateResult, error)
}
