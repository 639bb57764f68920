package controllers

import (
	"log/slog"
	"net/http"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// StatusUpdateRequest is the request body for PATCH /users/{userId}/events/{eventId}/requests.
type StatusUpdateRequest struct {
	RequestIDs []int64 `json:"requestIds"`
	Status     string  `json:"status"`
}

// Validate implements Validator.
func (s StatusUpdateRequest) Validate() []string {
	var errs []string
	if len(s.RequestIDs) == 0 {
		errs = append(errs, "Field: requestIds. Error: must not be empty. Value: []")
	}
	switch domain.RequestStatus(s.Status) {
	case domain.RequestStatusConfirmed, domain.RequestStatusRejected:
	default:
		errs = append(errs, "Field: status. Error: must be CONFIRMED or REJECTED. Value: "+s.Status)
	}
	return errs
}

// RequestSuccessResponse is the success response envelope for a single participation request.
type RequestSuccessResponse struct {
	Data  ParticipationRequestDto `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ListRequestsSuccessResponse is the success response envelope for request lists.
type ListRequestsSuccessResponse struct {
	Data  []ParticipationRequestDto `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// StatusUpdateSuccessResponse is the success response envelope for batch moderation.
type StatusUpdateSuccessResponse struct {
	Data  EventRequestStatusUpdateResult `json:"data"`
	Error *helpers.APIError              `json:"error"`
}

// ParticipationController handles participation requests for requesters and event owners.
type ParticipationController struct {
	Logger  *slog.Logger
	Service domain.ParticipationService
}

func NewParticipationController(logger *slog.Logger, svc domain.ParticipationService) *ParticipationController {
	return &ParticipationController{
		Logger:  logger,
		Service: svc,
	}
}

// ListUserRequests godoc
// @Summary List a user's participation requests
// @Tags private: requests
// @Produce json
// @Param userId path int true "Requester id"
// @Success 200 {object} controllers.ListRequestsSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/{userId}/requests [get]
func (c *ParticipationController) ListUserRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	reqs, err := c.Service.ListByRequester(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toRequestDtos(reqs))
}

// CreateRequest godoc
// @Summary Ask to participate in an event
// @Description The request is CONFIRMED immediately when the event has no limit or does not moderate requests.
// @Tags private: requests
// @Produce json
// @Param userId path int true "Requester id"
// @Param eventId query int true "Event id"
// @Success 201 {object} controllers.RequestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (repeat, unpublished, full or own event)"
// @Router /users/{userId}/requests [post]
func (c *ParticipationController) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	eventID, err := helpers.QueryID(r, "eventId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	req, err := c.Service.Create(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, toRequestDto(req))
}

// CancelRequest godoc
// @Summary Cancel one's own participation request
// @Tags private: requests
// @Produce json
// @Param userId path int true "Requester id"
// @Param requestId path int true "Request id"
// @Success 200 {object} controllers.RequestSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not the requester)"
// @Router /users/{userId}/requests/{requestId}/cancel [patch]
func (c *ParticipationController) CancelRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	requestID, err := helpers.PathID(r, "requestId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	req, err := c.Service.Cancel(r.Context(), userID, requestID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toRequestDto(req))
}

// ListEventRequests godoc
// @Summary List the requests for one of the user's events
// @Tags private: requests
// @Produce json
// @Param userId path int true "Initiator id"
// @Param eventId path int true "Event id"
// @Success 200 {object} controllers.ListRequestsSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not the initiator)"
// @Router /users/{userId}/events/{eventId}/requests [get]
func (c *ParticipationController) ListEventRequests(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := c.userAndEvent(w, r)
	if !ok {
		return
	}
	reqs, err := c.Service.ListByEvent(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toRequestDtos(reqs))
}

// UpdateRequestStatuses godoc
// @Summary Confirm or reject pending requests
// @Description All listed requests must be PENDING. Confirmations stop at the participant limit; the rest are rejected.
// @Tags private: requests
// @Accept json
// @Produce json
// @Param userId path int true "Initiator id"
// @Param eventId path int true "Event id"
// @Param body body StatusUpdateRequest true "Requests and target status"
// @Success 200 {object} controllers.StatusUpdateSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (limit reached or not pending)"
// @Router /users/{userId}/events/{eventId}/requests [patch]
func (c *ParticipationController) UpdateRequestStatuses(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := c.userAndEvent(w, r)
	if !ok {
		return
	}
	var req StatusUpdateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.UpdateStatuses(r.Context(), userID, eventID, domain.StatusUpdate{
		RequestIDs: req.RequestIDs,
		Status:     domain.RequestStatus(req.Status),
	})
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventRequestStatusUpdateResult{
		ConfirmedRequests: toRequestDtos(result.Confirmed),
		RejectedRequests:  toRequestDtos(result.Rejected),
	})
}

func (c *ParticipationController) userAndEvent(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return 0, 0, false
	}
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return 0, 0, false
	}
	return userID, eventID, true
}
