package controllers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validEventBody = `{
	"annotation": "An evening of improvised jazz",
	"category": 1,
	"description": "Three sets by local trios with an open jam afterwards",
	"eventDate": "2026-06-01 18:30:00",
	"location": {"lat": 55.75, "lon": 37.62},
	"title": "Jazz night"
}`

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		check      func(t *testing.T, svc *fakeEventService)
	}{
		{
			name:       "defaults applied",
			body:       validEventBody,
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, svc *fakeEventService) {
				in := svc.gotInput
				assert.False(t, in.Paid)
				assert.Equal(t, 0, in.ParticipantLimit)
				assert.True(t, in.RequestModeration)
				assert.Equal(t, int64(1), in.CategoryID)
				assert.Equal(t, fixedTime, in.EventDate)
				assert.Equal(t, domain.Location{Lat: 55.75, Lon: 37.62}, in.Location)
			},
		},
		{
			name:       "explicit options",
			body:       strings.Replace(validEventBody, `"title"`, `"paid": true, "participantLimit": 5, "requestModeration": false, "title"`, 1),
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, svc *fakeEventService) {
				assert.True(t, svc.gotInput.Paid)
				assert.Equal(t, 5, svc.gotInput.ParticipantLimit)
				assert.False(t, svc.gotInput.RequestModeration)
			},
		},
		{
			name:       "short annotation",
			body:       strings.Replace(validEventBody, "An evening of improvised jazz", "Too short", 1),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad date format",
			body:       strings.Replace(validEventBody, "2026-06-01 18:30:00", "2026-06-01T18:30:00Z", 1),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing location",
			body:       strings.Replace(validEventBody, `"location": {"lat": 55.75, "lon": 37.62},`, "", 1),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative limit",
			body:       strings.Replace(validEventBody, `"title"`, `"participantLimit": -1, "title"`, 1),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "date too soon",
			body:       validEventBody,
			svcErr:     domain.Validation("Field: eventDate. Error: must contain a date that has not yet occurred. Value: 2026-06-01 18:30:00"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEventService{event: sampleEvent(5, domain.EventStatePending), err: tt.svcErr}
			ctrl := NewEventController(testLogger, svc)

			rr := serve(ctrl.CreateEvent, http.MethodPost, "/users/7/events", tt.body, "userId", "7")

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.check != nil {
				tt.check(t, svc)
				env := decode[EventFullDto](t, rr)
				assert.Equal(t, "PENDING", env.Data.State)
				assert.Equal(t, "2026-06-01 18:30:00", env.Data.EventDate)
				assert.Nil(t, env.Data.PublishedOn)
			}
		})
	}
}

func TestEventController_UpdateUserEvent(t *testing.T) {
	svc := &fakeEventService{event: sampleEvent(5, domain.EventStateCanceled)}
	ctrl := NewEventController(testLogger, svc)

	rr := serve(ctrl.UpdateUserEvent, http.MethodPatch, "/users/7/events/5",
		`{"stateAction":"CANCEL_REVIEW","eventDate":"2026-07-01 10:00:00","location":{"lat":1,"lon":2}}`,
		"userId", "7", "eventId", "5")

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, svc.gotPatch.StateAction)
	assert.Equal(t, domain.StateActionCancelReview, *svc.gotPatch.StateAction)
	require.NotNil(t, svc.gotPatch.EventDate)
	assert.Equal(t, time.Date(2026, 7, 1, 10, 0, 0, 0, time.Local), *svc.gotPatch.EventDate)
	assert.Equal(t, &domain.Location{Lat: 1, Lon: 2}, svc.gotPatch.Location)
	assert.Nil(t, svc.gotPatch.Title)
	assert.Equal(t, "CANCELED", decode[EventFullDto](t, rr).Data.State)

	t.Run("unknown action", func(t *testing.T) {
		rr := serve(ctrl.UpdateUserEvent, http.MethodPatch, "/users/7/events/5", `{"stateAction":"DELETE"}`,
			"userId", "7", "eventId", "5")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("blank title", func(t *testing.T) {
		rr := serve(ctrl.UpdateUserEvent, http.MethodPatch, "/users/7/events/5", `{"title":"  "}`,
			"userId", "7", "eventId", "5")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("published event", func(t *testing.T) {
		svc.err = domain.Conflict("Event must not be published", "Only pending or canceled events can be changed")
		defer func() { svc.err = nil }()
		rr := serve(ctrl.UpdateUserEvent, http.MethodPatch, "/users/7/events/5", `{"paid":true}`,
			"userId", "7", "eventId", "5")
		require.Equal(t, http.StatusConflict, rr.Code)
		env := decode[any](t, rr)
		assert.Equal(t, helpers.ErrCodeConflict, env.Error.Code)
		assert.Equal(t, "Event must not be published", env.Error.Reason)
	})
}

func TestEventController_AdminEndpoints(t *testing.T) {
	published := sampleEvent(5, domain.EventStatePublished)
	published.PublishedOn = &fixedTime
	svc := &fakeEventService{event: published, events: []*domain.Event{published}}
	ctrl := NewEventController(testLogger, svc)

	rr := serve(ctrl.SearchEventsAdmin, http.MethodGet,
		"/admin/events?users=7,8&states=PUBLISHED&states=PENDING&categories=1&rangeStart=2026-01-01%2000:00:00&from=0&size=20", "")
	require.Equal(t, http.StatusOK, rr.Code)
	f := svc.gotFilter
	assert.Equal(t, []int64{7, 8}, f.UserIDs)
	assert.Equal(t, []domain.EventState{domain.EventStatePublished, domain.EventStatePending}, f.States)
	assert.Equal(t, []int64{1}, f.CategoryIDs)
	require.NotNil(t, f.RangeStart)
	assert.Nil(t, f.RangeEnd)
	assert.Equal(t, 20, f.Page.Size)
	env := decode[[]EventFullDto](t, rr)
	require.Len(t, env.Data, 1)
	require.NotNil(t, env.Data[0].PublishedOn)
	assert.Equal(t, "2026-06-01 18:30:00", *env.Data[0].PublishedOn)

	rr = serve(ctrl.SearchEventsAdmin, http.MethodGet, "/admin/events?states=DRAFT", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(ctrl.UpdateEventAdmin, http.MethodPatch, "/admin/events/5", `{"stateAction":"PUBLISH_EVENT"}`, "eventId", "5")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.StateActionPublish, *svc.gotPatch.StateAction)

	svc.err = domain.Conflict("Event is not PENDING", "An event can only be published if it is in a publish PENDING state")
	rr = serve(ctrl.UpdateEventAdmin, http.MethodPatch, "/admin/events/5", `{"stateAction":"PUBLISH_EVENT"}`, "eventId", "5")
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestEventController_PublicEndpoints(t *testing.T) {
	event := sampleEvent(5, domain.EventStatePublished)
	event.Views = 3
	svc := &fakeEventService{event: event, events: []*domain.Event{event}}
	ctrl := NewEventController(testLogger, svc)

	t.Run("search", func(t *testing.T) {
		rr := serve(ctrl.SearchEvents, http.MethodGet,
			"/events?text=jazz&categories=1,2&paid=false&onlyAvailable=true&sort=VIEWS&from=10&size=5", "")
		require.Equal(t, http.StatusOK, rr.Code)
		f := svc.gotFilter
		assert.Equal(t, "jazz", f.Text)
		assert.Equal(t, []int64{1, 2}, f.CategoryIDs)
		require.NotNil(t, f.Paid)
		assert.False(t, *f.Paid)
		assert.True(t, f.OnlyAvailable)
		assert.Equal(t, domain.EventSortViews, f.Sort)
		assert.Equal(t, domain.PaginationParams{From: 10, Size: 5}, f.Page)
		assert.Equal(t, "192.0.2.1", svc.gotIP)
		env := decode[[]EventShortDto](t, rr)
		require.Len(t, env.Data, 1)
		assert.Equal(t, int64(3), env.Data[0].Views)
	})

	t.Run("search rejects unknown sort", func(t *testing.T) {
		rr := serve(ctrl.SearchEvents, http.MethodGet, "/events?sort=TITLE", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("search rejects bad range", func(t *testing.T) {
		rr := serve(ctrl.SearchEvents, http.MethodGet, "/events?rangeStart=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("get published", func(t *testing.T) {
		rr := serve(ctrl.GetEvent, http.MethodGet, "/events/5", "", "id", "5")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(3), decode[EventFullDto](t, rr).Data.Views)
	})

	t.Run("get unpublished", func(t *testing.T) {
		svc.err = domain.NotFoundf("Event with id=%d was not found", 6)
		defer func() { svc.err = nil }()
		rr := serve(ctrl.GetEvent, http.MethodGet, "/events/6", "", "id", "6")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
