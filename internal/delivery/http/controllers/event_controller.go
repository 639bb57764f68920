package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// NewEventRequest is the request body for POST /users/{userId}/events.
type NewEventRequest struct {
	Annotation        string       `json:"annotation"`
	Category          int64        `json:"category"`
	Description       string       `json:"description"`
	EventDate         string       `json:"eventDate"`
	Location          *LocationDto `json:"location"`
	Paid              *bool        `json:"paid"`
	ParticipantLimit  *int         `json:"participantLimit"`
	RequestModeration *bool        `json:"requestModeration"`
	Title             string       `json:"title"`
}

// Validate implements Validator.
func (n NewEventRequest) Validate() []string {
	errs := helpers.CheckLength(nil, "annotation", &n.Annotation, 20, 2000, true)
	errs = helpers.CheckLength(errs, "description", &n.Description, 20, 7000, true)
	errs = helpers.CheckLength(errs, "title", &n.Title, 3, 120, true)
	if n.Category < 1 {
		errs = append(errs, fmt.Sprintf("Field: category. Error: must be a positive number. Value: %d", n.Category))
	}
	errs = checkDate(errs, &n.EventDate, true)
	if n.Location == nil {
		errs = append(errs, "Field: location. Error: must not be null. Value: null")
	} else {
		errs = checkLocation(errs, n.Location)
	}
	if n.ParticipantLimit != nil && *n.ParticipantLimit < 0 {
		errs = append(errs, fmt.Sprintf("Field: participantLimit. Error: must be greater than or equal to 0. Value: %d", *n.ParticipantLimit))
	}
	return errs
}

func (n NewEventRequest) toInput() domain.NewEventInput {
	date, _ := domain.ParseDateTime(n.EventDate)
	in := domain.NewEventInput{
		Title:             n.Title,
		Annotation:        n.Annotation,
		Description:       n.Description,
		CategoryID:        n.Category,
		EventDate:         date,
		Location:          domain.Location{Lat: n.Location.Lat, Lon: n.Location.Lon},
		RequestModeration: true,
	}
	if n.Paid != nil {
		in.Paid = *n.Paid
	}
	if n.ParticipantLimit != nil {
		in.ParticipantLimit = *n.ParticipantLimit
	}
	if n.RequestModeration != nil {
		in.RequestModeration = *n.RequestModeration
	}
	return in
}

// UpdateEventRequest is the request body for the owner and admin PATCH endpoints.
// Omitted fields are unchanged.
type UpdateEventRequest struct {
	Annotation        *string      `json:"annotation"`
	Category          *int64       `json:"category"`
	Description       *string      `json:"description"`
	EventDate         *string      `json:"eventDate"`
	Location          *LocationDto `json:"location"`
	Paid              *bool        `json:"paid"`
	ParticipantLimit  *int         `json:"participantLimit"`
	RequestModeration *bool        `json:"requestModeration"`
	StateAction       *string      `json:"stateAction"`
	Title             *string      `json:"title"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	errs := helpers.CheckLength(nil, "annotation", u.Annotation, 20, 2000, false)
	errs = helpers.CheckLength(errs, "description", u.Description, 20, 7000, false)
	errs = helpers.CheckLength(errs, "title", u.Title, 3, 120, false)
	if u.Category != nil && *u.Category < 1 {
		errs = append(errs, fmt.Sprintf("Field: category. Error: must be a positive number. Value: %d", *u.Category))
	}
	if u.EventDate != nil {
		errs = checkDate(errs, u.EventDate, false)
	}
	if u.Location != nil {
		errs = checkLocation(errs, u.Location)
	}
	if u.ParticipantLimit != nil && *u.ParticipantLimit < 0 {
		errs = append(errs, fmt.Sprintf("Field: participantLimit. Error: must be greater than or equal to 0. Value: %d", *u.ParticipantLimit))
	}
	if u.StateAction != nil {
		switch domain.StateAction(*u.StateAction) {
		case domain.StateActionSendToReview, domain.StateActionCancelReview, domain.StateActionPublish, domain.StateActionReject:
		default:
			errs = append(errs, "Field: stateAction. Error: unknown action. Value: "+*u.StateAction)
		}
	}
	return errs
}

func (u UpdateEventRequest) toPatch() domain.EventPatch {
	p := domain.EventPatch{
		Title:             u.Title,
		Annotation:        u.Annotation,
		Description:       u.Description,
		CategoryID:        u.Category,
		Paid:              u.Paid,
		ParticipantLimit:  u.ParticipantLimit,
		RequestModeration: u.RequestModeration,
	}
	if u.EventDate != nil {
		date, _ := domain.ParseDateTime(*u.EventDate)
		p.EventDate = &date
	}
	if u.Location != nil {
		p.Location = &domain.Location{Lat: u.Location.Lat, Lon: u.Location.Lon}
	}
	if u.StateAction != nil {
		action := domain.StateAction(*u.StateAction)
		p.StateAction = &action
	}
	return p
}

func checkDate(errs []string, value *string, required bool) []string {
	if *value == "" {
		if required {
			errs = append(errs, "Field: eventDate. Error: must not be blank. Value: null")
		}
		return errs
	}
	if _, err := domain.ParseDateTime(*value); err != nil {
		errs = append(errs, "Field: eventDate. Error: must match yyyy-MM-dd HH:mm:ss. Value: "+*value)
	}
	return errs
}

func checkLocation(errs []string, l *LocationDto) []string {
	if l.Lat < -90 || l.Lat > 90 {
		errs = append(errs, fmt.Sprintf("Field: location.lat. Error: must be between -90 and 90. Value: %v", l.Lat))
	}
	if l.Lon < -180 || l.Lon > 180 {
		errs = append(errs, fmt.Sprintf("Field: location.lon. Error: must be between -180 and 180. Value: %v", l.Lon))
	}
	return errs
}

// EventFullSuccessResponse is the success response envelope for a single event.
type EventFullSuccessResponse struct {
	Data  EventFullDto      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsFullSuccessResponse is the success response envelope for GET /admin/events (200).
type ListEventsFullSuccessResponse struct {
	Data  []EventFullDto    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsShortSuccessResponse is the success response envelope for event lists.
type ListEventsShortSuccessResponse struct {
	Data  []EventShortDto   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventController handles the private, admin and public event endpoints.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description The event starts in PENDING. eventDate must be at least two hours ahead.
// @Tags private: events
// @Accept json
// @Produce json
// @Param userId path int true "Initiator id"
// @Param body body NewEventRequest true "Event"
// @Success 201 {object} controllers.EventFullSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (user or category)"
// @Router /users/{userId}/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	var req NewEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), userID, req.toInput())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, toEventFullDto(event))
}

// ListUserEvents godoc
// @Summary List the events created by a user
// @Tags private: events
// @Produce json
// @Param userId path int true "Initiator id"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} controllers.ListEventsShortSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/{userId}/events [get]
func (c *EventController) ListUserEvents(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	events, err := c.Service.ListByInitiator(r.Context(), userID, page)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toEventShortDtos(events))
}

// GetUserEvent godoc
// @Summary Get one of a user's events
// @Tags private: events
// @Produce json
// @Param userId path int true "Initiator id"
// @Param eventId path int true "Event id"
// @Success 200 {object} controllers.EventFullSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/{userId}/events/{eventId} [get]
func (c *EventController) GetUserEvent(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := c.userAndEvent(w, r)
	if !ok {
		return
	}
	event, err := c.Service.GetByInitiator(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toEventFullDto(event))
}

// UpdateUserEvent godoc
// @Summary Update an event as its initiator
// @Description Only PENDING or CANCELED events can be changed. stateAction may be SEND_TO_REVIEW or CANCEL_REVIEW.
// @Tags private: events
// @Accept json
// @Produce json
// @Param userId path int true "Initiator id"
// @Param eventId path int true "Event id"
// @Param body body UpdateEventRequest true "Fields to change"
// @Success 200 {object} controllers.EventFullSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (published)"
// @Router /users/{userId}/events/{eventId} [patch]
func (c *EventController) UpdateUserEvent(w http.ResponseWriter, r *http.Request) {
	userID, eventID, ok := c.userAndEvent(w, r)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateByInitiator(r.Context(), userID, eventID, req.toPatch())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toEventFullDto(event))
}

// SearchEventsAdmin godoc
// @Summary Search events as an admin
// @Tags admin: events
// @Produce json
// @Security BearerAuth
// @Param users query []int false "Initiator ids" collectionFormat(csv)
// @Param states query []string false "States" collectionFormat(csv)
// @Param categories query []int false "Category ids" collectionFormat(csv)
// @Param rangeStart query string false "yyyy-MM-dd HH:mm:ss"
// @Param rangeEnd query string false "yyyy-MM-dd HH:mm:ss"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} controllers.ListEventsFullSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admin/events [get]
func (c *EventController) SearchEventsAdmin(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEventFilter(r)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	if filter.UserIDs, err = helpers.QueryInt64s(r, "users"); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	for _, s := range helpers.QueryStrings(r, "states") {
		state := domain.EventState(s)
		if !state.Valid() {
			helpers.WriteDomainError(w, r, c.Logger, domain.Validation("Unknown state: "+s))
			return
		}
		filter.States = append(filter.States, state)
	}
	events, err := c.Service.SearchAdmin(r.Context(), filter)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toEventFullDtos(events))
}

// UpdateEventAdmin godoc
// @Summary Edit or moderate an event
// @Description stateAction may be PUBLISH_EVENT or REJECT_EVENT. Publishing requires eventDate at least one hour ahead.
// @Tags admin: events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event id"
// @Param body body UpdateEventRequest true "Fields to change"
// @Success 200 {object} controllers.EventFullSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (wrong state)"
// @Router /admin/events/{eventId} [patch]
func (c *EventController) UpdateEventAdmin(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateByAdmin(r.Context(), eventID, req.toPatch())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toEventFullDto(event))
}

// SearchEvents godoc
// @Summary Search published events
// @Description Without a date range only upcoming events are returned. Each call is recorded as a hit on /events.
// @Tags public: events
// @Produce json
// @Param text query string false "Matches annotation or description, case-insensitive"
// @Param categories query []int false "Category ids" collectionFormat(csv)
// @Param paid query bool false "Paid events only / free events only"
// @Param rangeStart query string false "yyyy-MM-dd HH:mm:ss"
// @Param rangeEnd query string false "yyyy-MM-dd HH:mm:ss"
// @Param onlyAvailable query bool false "Only events with free places" default(false)
// @Param sort query string false "EVENT_DATE or VIEWS"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} controllers.ListEventsShortSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /events [get]
func (c *EventController) SearchEvents(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEventFilter(r)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	filter.Text = r.URL.Query().Get("text")
	if filter.Paid, err = helpers.QueryBool(r, "paid"); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	onlyAvailable, err := helpers.QueryBool(r, "onlyAvailable")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	filter.OnlyAvailable = onlyAvailable != nil && *onlyAvailable
	switch s := domain.EventSort(r.URL.Query().Get("sort")); s {
	case "", domain.EventSortDate, domain.EventSortViews:
		filter.Sort = s
	default:
		helpers.WriteDomainError(w, r, c.Logger, domain.Validation("Unknown sort: "+string(s)))
		return
	}
	events, err := c.Service.SearchPublished(r.Context(), filter, helpers.ClientIP(r))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toEventShortDtos(events))
}

// GetEvent godoc
// @Summary Get a published event
// @Description Each call is recorded as a hit on /events/{id}; views count unique client IPs.
// @Tags public: events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} controllers.EventFullSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "id")
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	event, err := c.Service.GetPublished(r.Context(), eventID, helpers.ClientIP(r))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, toEventFullDto(event))
}

func (c *EventController) userAndEvent(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
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

// parseEventFilter reads the parameters shared by the admin and public searches.
func parseEventFilter(r *http.Request) (domain.EventFilter, error) {
	var f domain.EventFilter
	var err error
	if f.CategoryIDs, err = helpers.QueryInt64s(r, "categories"); err != nil {
		return f, err
	}
	if f.RangeStart, err = helpers.QueryDateTime(r, "rangeStart"); err != nil {
		return f, err
	}
	if f.RangeEnd, err = helpers.QueryDateTime(r, "rangeEnd"); err != nil {
		return f, err
	}
	if f.Page, err = helpers.ParsePagination(r); err != nil {
		return f, err
	}
	return f, nil
}

