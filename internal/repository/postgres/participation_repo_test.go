package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorewithme/internal/domain"
)

var requestColumns = []string{"id", "created", "event_id", "requester_id", "status"}

func TestParticipationRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO participation_requests \(created, event_id, requester_id, status\)`).
					WithArgs(created, int64(42), int64(8), "CONFIRMED").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(100)))
			},
		},
		{
			name: "duplicate pair is a conflict",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO participation_requests`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewParticipationRepository(db)
			req := &domain.ParticipationRequest{Created: created, EventID: 42, RequesterID: 8, Status: domain.RequestStatusConfirmed}
			err = repo.Create(ctx, req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(100), req.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestParticipationRepository_GetByRequesterAndEvent(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE requester_id = \$1 AND event_id = \$2`).
					WithArgs(int64(8), int64(42)).
					WillReturnRows(sqlmock.NewRows(requestColumns).AddRow(int64(100), created, int64(42), int64(8), "PENDING"))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE requester_id = \$1 AND event_id = \$2`).
					WithArgs(int64(8), int64(42)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewParticipationRepository(db)
			got, err := repo.GetByRequesterAndEvent(ctx, 8, 42)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.RequestStatusPending, got.Status)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestParticipationRepository_ListByIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE id = ANY\(\$1\) ORDER BY id FOR UPDATE`).
		WithArgs(pq.Array([]int64{100, 101})).
		WillReturnRows(sqlmock.NewRows(requestColumns).
			AddRow(int64(100), created, int64(42), int64(8), "PENDING").
			AddRow(int64(101), created, int64(42), int64(9), "PENDING"))

	repo := NewParticipationRepository(db)
	got, err := repo.ListByIDs(context.Background(), []int64{100, 101})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(9), got[1].RequesterID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepository_ListByIDs_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewParticipationRepository(db)
	got, err := repo.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepository_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "status matches", affected: 1},
		{name: "status changed underneath", affected: 0, wantErr: domain.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(`UPDATE participation_requests SET status = \$1 WHERE id = \$2 AND status = \$3`).
				WithArgs("CANCELED", int64(100), "CONFIRMED").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			repo := NewParticipationRepository(db)
			err = repo.UpdateStatus(context.Background(), 100, domain.RequestStatusConfirmed, domain.RequestStatusCanceled)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestParticipationRepository_GetByIDForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	created := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM participation_requests WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(100)).
		WillReturnRows(sqlmock.NewRows(requestColumns).AddRow(int64(100), created, int64(42), int64(8), "PENDING"))
	mock.ExpectQuery(`FROM participation_requests WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(101)).
		WillReturnError(sql.ErrNoRows)

	repo := NewParticipationRepository(db)
	got, err := repo.GetByIDForUpdate(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, got.Status)

	_, err = repo.GetByIDForUpdate(context.Background(), 101)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
