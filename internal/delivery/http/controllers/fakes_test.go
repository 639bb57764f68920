package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"

	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// serve runs handler against a request built from method, target and body.
// pathValues are name/value pairs set as ServeMux wildcards.
func serve(handler http.HandlerFunc, method, target, body string, pathValues ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "http://test"+target, reader)
	for i := 0; i+1 < len(pathValues); i += 2 {
		req.SetPathValue(pathValues[i], pathValues[i+1])
	}
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

type envelope[T any] struct {
	Data  T                 `json:"data"`
	Error *helpers.APIError `json:"error"`
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

var fixedTime = time.Date(2026, 6, 1, 18, 30, 0, 0, time.Local)

func sampleEvent(id int64, state domain.EventState) *domain.Event {
	return &domain.Event{
		ID:                id,
		Title:             "Jazz night",
		Annotation:        "An evening of improvised jazz",
		Description:       "Three sets by local trios with an open jam afterwards",
		Category:          domain.Category{ID: 1, Name: "Concerts"},
		Initiator:         domain.UserShort{ID: 7, Name: "Owner"},
		Location:          domain.Location{ID: 1, Lat: 55.75, Lon: 37.62},
		EventDate:         fixedTime,
		CreatedOn:         fixedTime.Add(-72 * time.Hour),
		ParticipantLimit:  10,
		RequestModeration: true,
		State:             state,
	}
}

type fakeUserService struct {
	created   *domain.User
	users     []*domain.User
	err       error
	gotIDs    []int64
	gotPage   domain.PaginationParams
	deletedID int64
}

func (f *fakeUserService) Create(_ context.Context, name, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = &domain.User{ID: 1, Name: name, Email: email}
	return f.created, nil
}

func (f *fakeUserService) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakeUserService) List(_ context.Context, ids []int64, page domain.PaginationParams) ([]*domain.User, error) {
	f.gotIDs, f.gotPage = ids, page
	return f.users, f.err
}

type fakeCategoryService struct {
	category *domain.Category
	list     []*domain.Category
	err      error
	gotName  string
}

func (f *fakeCategoryService) Create(_ context.Context, name string) (*domain.Category, error) {
	f.gotName = name
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Category{ID: 1, Name: name}, nil
}

func (f *fakeCategoryService) Update(_ context.Context, id int64, name string) (*domain.Category, error) {
	f.gotName = name
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Category{ID: id, Name: name}, nil
}

func (f *fakeCategoryService) Delete(context.Context, int64) error { return f.err }

func (f *fakeCategoryService) GetByID(context.Context, int64) (*domain.Category, error) {
	return f.category, f.err
}

func (f *fakeCategoryService) List(context.Context, domain.PaginationParams) ([]*domain.Category, error) {
	return f.list, f.err
}

type fakeEventService struct {
	event     *domain.Event
	events    []*domain.Event
	err       error
	gotInput  domain.NewEventInput
	gotPatch  domain.EventPatch
	gotFilter domain.EventFilter
	gotIP     string
}

func (f *fakeEventService) result() (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func (f *fakeEventService) Create(_ context.Context, _ int64, in domain.NewEventInput) (*domain.Event, error) {
	f.gotInput = in
	return f.result()
}

func (f *fakeEventService) GetByInitiator(context.Context, int64, int64) (*domain.Event, error) {
	return f.result()
}

func (f *fakeEventService) ListByInitiator(context.Context, int64, domain.PaginationParams) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeEventService) UpdateByInitiator(_ context.Context, _, _ int64, p domain.EventPatch) (*domain.Event, error) {
	f.gotPatch = p
	return f.result()
}

func (f *fakeEventService) UpdateByAdmin(_ context.Context, _ int64, p domain.EventPatch) (*domain.Event, error) {
	f.gotPatch = p
	return f.result()
}

func (f *fakeEventService) SearchAdmin(_ context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	f.gotFilter = filter
	return f.events, f.err
}

func (f *fakeEventService) SearchPublished(_ context.Context, filter domain.EventFilter, ip string) ([]*domain.Event, error) {
	f.gotFilter, f.gotIP = filter, ip
	return f.events, f.err
}

func (f *fakeEventService) GetPublished(_ context.Context, _ int64, ip string) (*domain.Event, error) {
	f.gotIP = ip
	return f.result()
}

type fakeParticipationService struct {
	request   *domain.ParticipationRequest
	requests  []*domain.ParticipationRequest
	result    *domain.StatusUpdateResult
	err       error
	gotEvent  int64
	gotUpdate domain.StatusUpdate
}

func (f *fakeParticipationService) Create(_ context.Context, _, eventID int64) (*domain.ParticipationRequest, error) {
	f.gotEvent = eventID
	return f.request, f.err
}

func (f *fakeParticipationService) Cancel(context.Context, int64, int64) (*domain.ParticipationRequest, error) {
	return f.request, f.err
}

func (f *fakeParticipationService) ListByRequester(context.Context, int64) ([]*domain.ParticipationRequest, error) {
	return f.requests, f.err
}

func (f *fakeParticipationService) ListByEvent(context.Context, int64, int64) ([]*domain.ParticipationRequest, error) {
	return f.requests, f.err
}

func (f *fakeParticipationService) UpdateStatuses(_ context.Context, _, _ int64, u domain.StatusUpdate) (*domain.StatusUpdateResult, error) {
	f.gotUpdate = u
	return f.result, f.err
}

type fakeCommentService struct {
	comment   *domain.Comment
	comments  []*domain.Comment
	err       error
	gotInput  domain.NewCommentInput
	gotText   string
	deletedBy string
}

func (f *fakeCommentService) Create(_ context.Context, _, _ int64, in domain.NewCommentInput) (*domain.Comment, error) {
	f.gotInput = in
	return f.comment, f.err
}

func (f *fakeCommentService) Update(_ context.Context, _, _ int64, text string) (*domain.Comment, error) {
	f.gotText = text
	return f.comment, f.err
}

func (f *fakeCommentService) Delete(context.Context, int64, int64) error {
	f.deletedBy = "author"
	return f.err
}

func (f *fakeCommentService) DeleteByAdmin(context.Context, int64) error {
	f.deletedBy = "admin"
	return f.err
}

func (f *fakeCommentService) GetByID(context.Context, int64) (*domain.Comment, error) {
	return f.comment, f.err
}

func (f *fakeCommentService) Search(_ context.Context, text string, _ domain.PaginationParams) ([]*domain.Comment, error) {
	f.gotText = text
	return f.comments, f.err
}

func (f *fakeCommentService) ListByEvent(context.Context, int64, domain.PaginationParams) ([]*domain.Comment, error) {
	return f.comments, f.err
}

type fakeCompilationService struct {
	comp      *domain.Compilation
	comps     []*domain.Compilation
	err       error
	gotInput  domain.NewCompilationInput
	gotPatch  domain.CompilationPatch
	gotPinned *bool
}

func (f *fakeCompilationService) Create(_ context.Context, in domain.NewCompilationInput) (*domain.Compilation, error) {
	f.gotInput = in
	return f.comp, f.err
}

func (f *fakeCompilationService) Update(_ context.Context, _ int64, p domain.CompilationPatch) (*domain.Compilation, error) {
	f.gotPatch = p
	return f.comp, f.err
}

func (f *fakeCompilationService) Delete(context.Context, int64) error { return f.err }

func (f *fakeCompilationService) GetByID(context.Context, int64) (*domain.Compilation, error) {
	return f.comp, f.err
}

func (f *fakeCompilationService) List(_ context.Context, pinned *bool, _ domain.PaginationParams) ([]*domain.Compilation, error) {
	f.gotPinned = pinned
	return f.comps, f.err
}

type fakeStatsService struct {
	saved    *domain.EndpointHit
	stats    []domain.ViewStats
	err      error
	gotQuery domain.StatsQuery
}

func (f *fakeStatsService) SaveHit(_ context.Context, hit *domain.EndpointHit) error {
	if f.err != nil {
		return f.err
	}
	hit.ID = 1
	f.saved = hit
	return nil
}

func (f *fakeStatsService) GetStats(_ context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	f.gotQuery = q
	return f.stats, f.err
}
