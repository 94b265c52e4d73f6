package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/delivery/http/helpers"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSeeder implements domain.Seeder for handler tests.
type fakeSeeder struct {
	err    error
	called bool
}

func (f *fakeSeeder) Seed(ctx context.Context) error {
	f.called = true
	return f.err
}

func newDebugController(logger *slog.Logger, seeder *fakeSeeder, events *fakeEventService, registrations *fakeRegistrationService, directory *fakeDirectoryService) *DebugController {
	return NewDebugController(logger, seeder, events, registrations, directory)
}

func TestDebugController_Seed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	t.Run("success", func(t *testing.T) {
		seeder := &fakeSeeder{}
		ctrl := newDebugController(logger, seeder, &fakeEventService{}, &fakeRegistrationService{}, &fakeDirectoryService{})

		req := httptest.NewRequest(http.MethodPost, "http://test/seed", nil)
		rr := httptest.NewRecorder()

		ctrl.Seed(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, seeder.called)
		var envelope struct {
			Data  map[string]string `json:"data"`
			Error *helpers.APIError `json:"error"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Nil(t, envelope.Error)
		assert.Equal(t, "Seeded", envelope.Data["message"])
	})

	t.Run("seed failure", func(t *testing.T) {
		seeder := &fakeSeeder{err: assert.AnError}
		ctrl := newDebugController(logger, seeder, &fakeEventService{}, &fakeRegistrationService{}, &fakeDirectoryService{})

		req := httptest.NewRequest(http.MethodPost, "http://test/seed", nil)
		rr := httptest.NewRecorder()

		ctrl.Seed(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeInternalError, envelope.Error.Code)
	})
}

func TestDebugController_Listings(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	now := time.Now().UTC()

	events := &fakeEventService{listEvents: []*domain.Event{
		{ID: 1, Name: "Hackathon", Type: "Workshop", Date: now, CollegeID: 1},
	}}
	registrations := &fakeRegistrationService{listRegs: []*domain.Registration{
		{ID: 1, StudentID: 1, EventID: 1, RegisteredAt: now, Attended: true, AttendedAt: &now},
	}}
	directory := &fakeDirectoryService{students: []*domain.Student{
		{ID: 1, Name: "Alice", Email: "alice@example.com", CollegeID: 1},
	}}
	ctrl := newDebugController(logger, &fakeSeeder{}, events, registrations, directory)

	t.Run("events", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/debug/events", nil)
		rr := httptest.NewRecorder()

		ctrl.ListEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, events.lastCollege)
		var envelope struct {
			Data  []*domain.Event   `json:"data"`
			Error *helpers.APIError `json:"error"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Len(t, envelope.Data, 1)
		assert.Equal(t, "Hackathon", envelope.Data[0].Name)
	})

	t.Run("students", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/debug/students", nil)
		rr := httptest.NewRecorder()

		ctrl.ListStudents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope struct {
			Data  []*domain.Student `json:"data"`
			Error *helpers.APIError `json:"error"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Len(t, envelope.Data, 1)
		assert.Equal(t, "alice@example.com", envelope.Data[0].Email)
	})

	t.Run("registrations", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/debug/registrations", nil)
		rr := httptest.NewRecorder()

		ctrl.ListRegistrations(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope struct {
			Data  []*domain.Registration `json:"data"`
			Error *helpers.APIError      `json:"error"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Len(t, envelope.Data, 1)
		assert.True(t, envelope.Data[0].Attended)
	})

	t.Run("listing failure", func(t *testing.T) {
		failing := &fakeEventService{listErr: assert.AnError}
		ctrl := newDebugController(logger, &fakeSeeder{}, failing, registrations, directory)

		req := httptest.NewRequest(http.MethodGet, "http://test/debug/events", nil)
		rr := httptest.NewRecorder()

		ctrl.ListEvents(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
