package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorewithme/internal/domain"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantReason string
		wantMsg    string
	}{
		{"not found", domain.NotFoundf("Event with id=%d was not found", 3), http.StatusNotFound, ErrCodeNotFound, domain.ReasonNotFound, "Event with id=3 was not found"},
		{"conflict keeps reason", domain.Conflict("Event is not PENDING", "cannot publish"), http.StatusConflict, ErrCodeConflict, "Event is not PENDING", "cannot publish"},
		{"wrapped validation", fmt.Errorf("create: %w", domain.Validation("bad date")), http.StatusBadRequest, ErrCodeBadRequest, domain.ReasonValidation, "bad date"},
		{"bare sentinel", domain.ErrNotFound, http.StatusNotFound, ErrCodeNotFound, domain.ReasonNotFound, "not found"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, ErrCodeInternalError, "Internal server error.", "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/events/3", nil)
			WriteDomainError(rr, req, discard, tt.err)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			resp := decodeEnvelope(t, rr)
			assert.Nil(t, resp.Data)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantReason, resp.Error.Reason)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
			_, err := domain.ParseDateTime(resp.Error.Timestamp)
			assert.NoError(t, err)
		})
	}
}

type sample struct {
	Name string `json:"name"`
}

func (s sample) Validate() []string {
	return CheckLength(nil, "name", &s.Name, 2, 5, true)
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantOK bool
	}{
		{"valid", `{"name":"Jazz"}`, true},
		{"too long", `{"name":"Jazz night"}`, false},
		{"blank", `{"name":"  "}`, false},
		{"unknown field", `{"name":"Jazz","x":1}`, false},
		{"malformed", `{`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst sample
			ok := DecodeAndValidate(rr, req, &dst)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Equal(t, ErrCodeBadRequest, decodeEnvelope(t, rr).Error.Code)
			}
		})
	}
}

func TestCheckLength(t *testing.T) {
	long := strings.Repeat("é", 6)
	ok := "éé"
	assert.Empty(t, CheckLength(nil, "title", &ok, 2, 5, true))
	assert.Len(t, CheckLength(nil, "title", &long, 2, 5, true), 1)
	assert.Empty(t, CheckLength(nil, "title", nil, 2, 5, false))
	assert.Len(t, CheckLength(nil, "title", nil, 2, 5, true), 1)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query   string
		want    domain.PaginationParams
		wantErr bool
	}{
		{"", domain.PaginationParams{From: 0, Size: 10}, false},
		{"from=20&size=5", domain.PaginationParams{From: 20, Size: 5}, false},
		{"size=5000", domain.PaginationParams{From: 0, Size: MaxSize}, false},
		{"from=-1", domain.PaginationParams{}, true},
		{"size=0", domain.PaginationParams{}, true},
		{"size=abc", domain.PaginationParams{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/events?"+tt.query, nil)
			got, err := ParsePagination(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/events?users=1,2&users=3&states=PENDING,PUBLISHED&rangeStart=2026-05-01+10:00:00&paid=true&eventId=7", nil)

	ids, err := QueryInt64s(req, "users")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.Equal(t, []string{"PENDING", "PUBLISHED"}, QueryStrings(req, "states"))

	start, err := QueryDateTime(req, "rangeStart")
	require.NoError(t, err)
	require.NotNil(t, start)
	assert.Equal(t, "2026-05-01 10:00:00", domain.FormatDateTime(*start))

	end, err := QueryDateTime(req, "rangeEnd")
	require.NoError(t, err)
	assert.Nil(t, end)

	paid, err := QueryBool(req, "paid")
	require.NoError(t, err)
	require.NotNil(t, paid)
	assert.True(t, *paid)

	id, err := QueryID(req, "eventId")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = QueryID(req, "missing")
	assert.ErrorIs(t, err, domain.ErrValidation)

	bad := httptest.NewRequest(http.MethodGet, "/x?ids=1,a&rangeStart=yesterday&paid=maybe", nil)
	_, err = QueryInt64s(bad, "ids")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = QueryDateTime(bad, "rangeStart")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = QueryBool(bad, "paid")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPathIDAndClientIP(t *testing.T) {
	mux := http.NewServeMux()
	var got int64
	var gotErr error
	var ip string
	mux.HandleFunc("GET /events/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = PathID(r, "id")
		ip = ClientIP(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/events/42", nil)
	req.RemoteAddr = "198.51.100.7:5555"
	mux.ServeHTTP(httptest.NewRecorder(), req)
	require.NoError(t, gotErr)
	assert.Equal(t, int64(42), got)
	assert.Equal(t, "198.51.100.7", ip)

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events/abc", nil))
	assert.ErrorIs(t, gotErr, domain.ErrValidation)
}
