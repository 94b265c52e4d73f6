package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	registeredAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		reg     *domain.Registration
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "success",
			reg:  domain.NewRegistration(1, 1, registeredAt),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations \(student_id, event_id, registered_at\)`).
					WithArgs(int64(1), int64(1), registeredAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
			},
			wantID: 1,
		},
		{
			name: "duplicate registration",
			reg:  domain.NewRegistration(1, 1, registeredAt),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateRegistration,
		},
		{
			name: "unknown event",
			reg:  domain.NewRegistration(1, 99, registeredAt),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(&pq.Error{Code: "23503"})
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			reg:  domain.NewRegistration(1, 1, registeredAt),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			err = repo.Create(ctx, tt.reg)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.reg.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	registeredAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	attendedAt := time.Date(2025, 9, 10, 10, 5, 0, 0, time.UTC)
	rating := 4

	tests := []struct {
		name    string
		id      int64
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Registration
		wantErr bool
	}{
		{
			name: "registered only",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, student_id, event_id, registered_at, attended, attended_at, feedback_rating`).
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "event_id", "registered_at", "attended", "attended_at", "feedback_rating"}).
						AddRow(int64(1), int64(1), int64(1), registeredAt, false, nil, nil))
			},
			want: &domain.Registration{
				ID:           1,
				StudentID:    1,
				EventID:      1,
				RegisteredAt: registeredAt,
			},
		},
		{
			name: "attended with feedback",
			id:   2,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, student_id, event_id, registered_at, attended, attended_at, feedback_rating`).
					WithArgs(int64(2)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "event_id", "registered_at", "attended", "attended_at", "feedback_rating"}).
						AddRow(int64(2), int64(2), int64(1), registeredAt, true, attendedAt, int64(4)))
			},
			want: &domain.Registration{
				ID:             2,
				StudentID:      2,
				EventID:        1,
				RegisteredAt:   registeredAt,
				Attended:       true,
				AttendedAt:     &attendedAt,
				FeedbackRating: &rating,
			},
		},
		{
			name: "not found",
			id:   42,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, student_id, event_id, registered_at, attended, attended_at, feedback_rating`).
					WithArgs(int64(42)).
					WillReturnError(sql.ErrNoRows)
			},
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_MarkAttended(t *testing.T) {
	ctx := context.Background()
	registeredAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	attendedAt := time.Date(2025, 9, 10, 10, 5, 0, 0, time.UTC)

	tests := []struct {
		name       string
		id         int64
		mock       func(mock sqlmock.Sqlmock)
		want       *domain.Registration
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE registrations\s+SET attended = TRUE, attended_at = COALESCE\(attended_at, \$2\)`).
					WithArgs(int64(1), attendedAt).
					WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "event_id", "registered_at", "attended", "attended_at", "feedback_rating"}).
						AddRow(int64(1), int64(1), int64(1), registeredAt, true, attendedAt, nil))
			},
			want: &domain.Registration{
				ID:           1,
				StudentID:    1,
				EventID:      1,
				RegisteredAt: registeredAt,
				Attended:     true,
				AttendedAt:   &attendedAt,
			},
		},
		{
			name: "not found",
			id:   42,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE registrations`).
					WithArgs(int64(42), attendedAt).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:    true,
			isNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			got, err := repo.MarkAttended(ctx, tt.id, attendedAt)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_SetFeedback(t *testing.T) {
	ctx := context.Background()
	registeredAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	attendedAt := time.Date(2025, 9, 10, 10, 5, 0, 0, time.UTC)
	rating := 4

	tests := []struct {
		name    string
		id      int64
		rating  int
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Registration
		wantErr error
	}{
		{
			name:   "success",
			id:     1,
			rating: 4,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE registrations\s+SET feedback_rating = \$2`).
					WithArgs(int64(1), 4).
					WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "event_id", "registered_at", "attended", "attended_at", "feedback_rating"}).
						AddRow(int64(1), int64(1), int64(1), registeredAt, true, attendedAt, int64(4)))
			},
			want: &domain.Registration{
				ID:             1,
				StudentID:      1,
				EventID:        1,
				RegisteredAt:   registeredAt,
				Attended:       true,
				AttendedAt:     &attendedAt,
				FeedbackRating: &rating,
			},
		},
		{
			name:   "attendance not recorded",
			id:     2,
			rating: 5,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE registrations\s+SET feedback_rating = \$2`).
					WithArgs(int64(2), 5).
					WillReturnError(&pq.Error{Code: "23514"})
			},
			wantErr: domain.ErrNotAttended,
		},
		{
			name:   "not found",
			id:     42,
			rating: 3,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE registrations\s+SET feedback_rating = \$2`).
					WithArgs(int64(42), 3).
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
			repo := NewRegistrationRepository(db)
			got, err := repo.SetFeedback(ctx, tt.id, tt.rating)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tt.wantErr))
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_List(t *testing.T) {
	ctx := context.Background()
	registeredAt := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "student_id", "event_id", "registered_at", "attended", "attended_at", "feedback_rating"}).
			AddRow(int64(1), int64(1), int64(1), registeredAt, false, nil, nil).
			AddRow(int64(2), int64(2), int64(1), registeredAt, false, nil, nil)
		mock.ExpectQuery(`SELECT id, student_id, event_id, registered_at, attended, attended_at, feedback_rating`).
			WillReturnRows(rows)

		repo := NewRegistrationRepository(db)
		got, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, int64(1), got[0].ID)
		require.Equal(t, int64(2), got[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, student_id, event_id, registered_at, attended, attended_at, feedback_rating`).
			WillReturnError(sql.ErrConnDone)

		repo := NewRegistrationRepository(db)
		got, err := repo.List(ctx)
		require.Error(t, err)
		require.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
