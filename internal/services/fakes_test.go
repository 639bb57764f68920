package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"explorewithme/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeTransactor runs fn directly; it counts how many transactions were opened.
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// fakeEventRepo is an in-memory EventRepository. Reads return copies so that
// only explicit writes change stored state.
type fakeEventRepo struct {
	mu     sync.Mutex
	byID   map[int64]*domain.Event
	nextID int64
	err    error
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{byID: make(map[int64]*domain.Event), nextID: 1}
	for _, e := range events {
		f.byID[e.ID] = e
		if e.ID >= f.nextID {
			f.nextID = e.ID + 1
		}
	}
	return f
}

func (f *fakeEventRepo) get(id int64) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	e.ID = f.nextID
	f.nextID++
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return f.get(id)
}

func (f *fakeEventRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	return f.get(id)
}

func (f *fakeEventRepo) GetByIDAndInitiator(ctx context.Context, id, initiatorID int64) (*domain.Event, error) {
	e, err := f.get(id)
	if err != nil {
		return nil, err
	}
	if e.Initiator.ID != initiatorID {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) GetByIDAndState(ctx context.Context, id int64, state domain.EventState) (*domain.Event, error) {
	e, err := f.get(id)
	if err != nil {
		return nil, err
	}
	if e.State != state {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) all() []*domain.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeEventRepo) ListByInitiator(ctx context.Context, initiatorID int64, page domain.PaginationParams) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.all() {
		if e.Initiator.ID == initiatorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Event, error) {
	out := []*domain.Event{}
	for _, id := range ids {
		if e, err := f.get(id); err == nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Search(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.all() {
		if len(filter.States) > 0 && !containsState(filter.States, e.State) {
			continue
		}
		if filter.Text != "" && !strings.Contains(strings.ToLower(e.Annotation+" "+e.Description), strings.ToLower(filter.Text)) {
			continue
		}
		if filter.RangeStart != nil && e.EventDate.Before(*filter.RangeStart) {
			continue
		}
		if filter.RangeEnd != nil && e.EventDate.After(*filter.RangeEnd) {
			continue
		}
		if filter.OnlyAvailable && !e.HasCapacity() {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func containsState(states []domain.EventState, s domain.EventState) bool {
	for _, st := range states {
		if st == s {
			return true
		}
	}
	return false
}

func (f *fakeEventRepo) ExistsByCategory(ctx context.Context, categoryID int64) (bool, error) {
	for _, e := range f.all() {
		if e.Category.ID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEventRepo) UpdateConfirmedRequests(ctx context.Context, id int64, confirmed int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.ConfirmedRequests = confirmed
	return nil
}

func (f *fakeEventRepo) stored(id int64) *domain.Event {
	e, _ := f.get(id)
	return e
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	byID map[int64]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[int64]*domain.User)}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return &domain.Error{Kind: domain.ErrConflict, Reason: domain.ReasonIntegrity, Message: "email already in use"}
		}
	}
	u.ID = int64(len(f.byID) + 1)
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(ctx context.Context, ids []int64, page domain.PaginationParams) ([]*domain.User, error) {
	out := []*domain.User{}
	for _, id := range ids {
		if u, ok := f.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakeCategoryRepo is an in-memory CategoryRepository.
type fakeCategoryRepo struct {
	byID map[int64]*domain.Category
}

func newFakeCategoryRepo(cats ...*domain.Category) *fakeCategoryRepo {
	f := &fakeCategoryRepo{byID: make(map[int64]*domain.Category)}
	for _, c := range cats {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	c.ID = int64(len(f.byID) + 1)
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context, page domain.PaginationParams) ([]*domain.Category, error) {
	out := []*domain.Category{}
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

// fakeLocationRepo interns locations by coordinates.
type fakeLocationRepo struct {
	locs    []*domain.Location
	creates int
}

func (f *fakeLocationRepo) FindByCoordinates(ctx context.Context, lat, lon float64) (*domain.Location, error) {
	for _, l := range f.locs {
		if l.Lat == lat && l.Lon == lon {
			cp := *l
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeLocationRepo) Create(ctx context.Context, loc *domain.Location) error {
	f.creates++
	loc.ID = int64(len(f.locs) + 1)
	cp := *loc
	f.locs = append(f.locs, &cp)
	return nil
}

// lockingTransactor serializes transactions the way row locks on one event do.
type lockingTransactor struct {
	mu sync.Mutex
}

func (l *lockingTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(ctx)
}

// fakeRequestRepo is an in-memory ParticipationRepository. afterRead runs once
// after the next unlocked GetByID, standing in for a transaction that commits
// between that read and the caller taking its locks.
type fakeRequestRepo struct {
	mu        sync.Mutex
	byID      map[int64]*domain.ParticipationRequest
	nextID    int64
	writes    int
	afterRead func()
}

func newFakeRequestRepo(reqs ...*domain.ParticipationRequest) *fakeRequestRepo {
	f := &fakeRequestRepo{byID: make(map[int64]*domain.ParticipationRequest), nextID: 1}
	for _, r := range reqs {
		f.byID[r.ID] = r
		if r.ID >= f.nextID {
			f.nextID = r.ID + 1
		}
	}
	return f
}

func (f *fakeRequestRepo) Create(ctx context.Context, r *domain.ParticipationRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.EventID == r.EventID && existing.RequesterID == r.RequesterID {
			return &domain.Error{Kind: domain.ErrConflict, Reason: domain.ReasonIntegrity, Message: "You can't add a repeat request"}
		}
	}
	r.ID = f.nextID
	f.nextID++
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func (f *fakeRequestRepo) get(id int64) (*domain.ParticipationRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id int64) (*domain.ParticipationRequest, error) {
	r, err := f.get(id)
	if hook := f.afterRead; hook != nil {
		f.afterRead = nil
		hook()
	}
	return r, err
}

func (f *fakeRequestRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.ParticipationRequest, error) {
	return f.get(id)
}

// set overwrites a stored status outside any service call.
func (f *fakeRequestRepo) set(id int64, status domain.RequestStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[id].Status = status
}

func (f *fakeRequestRepo) GetByRequesterAndEvent(ctx context.Context, requesterID, eventID int64) (*domain.ParticipationRequest, error) {
	for _, r := range f.list() {
		if r.RequesterID == requesterID && r.EventID == eventID {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRequestRepo) list() []*domain.ParticipationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.ParticipationRequest, 0, len(f.byID))
	for _, r := range f.byID {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeRequestRepo) ListByEvent(ctx context.Context, eventID int64) ([]*domain.ParticipationRequest, error) {
	out := []*domain.ParticipationRequest{}
	for _, r := range f.list() {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.ParticipationRequest, error) {
	out := []*domain.ParticipationRequest{}
	for _, r := range f.list() {
		if r.RequesterID == requesterID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListByIDs(ctx context.Context, ids []int64) ([]*domain.ParticipationRequest, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []*domain.ParticipationRequest{}
	for _, r := range f.list() {
		if want[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.RequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	if r.Status != from {
		return domain.Conflict(domain.ReasonConflict, "status changed")
	}
	r.Status = to
	f.writes++
	return nil
}

func (f *fakeRequestRepo) status(id int64) domain.RequestStatus {
	r, _ := f.get(id)
	return r.Status
}

// fakeStats records hits and serves fixed view counts.
type fakeStats struct {
	hits    []domain.EndpointHit
	views   map[string]int64
	queries []domain.StatsQuery
	err     error
}

func (f *fakeStats) RecordHit(ctx context.Context, hit domain.EndpointHit) error {
	if f.err != nil {
		return f.err
	}
	f.hits = append(f.hits, hit)
	return nil
}

func (f *fakeStats) ViewCounts(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.ViewStats
	for _, uri := range q.URIs {
		if n, ok := f.views[uri]; ok {
			out = append(out, domain.ViewStats{App: "ewm-main-service", URI: uri, Hits: n})
		}
	}
	return out, nil
}

// fakeEmailService captures notifications.
type fakeEmailService struct {
	requestStatus  []*domain.RequestStatusEmailData
	eventModerated []*domain.EventModeratedEmailData
	err            error
}

func (f *fakeEmailService) SendRequestStatus(ctx context.Context, data *domain.RequestStatusEmailData) error {
	f.requestStatus = append(f.requestStatus, data)
	return f.err
}

func (f *fakeEmailService) SendEventModerated(ctx context.Context, data *domain.EventModeratedEmailData) error {
	f.eventModerated = append(f.eventModerated, data)
	return f.err
}
