package controllers

import (
	"log/slog"
	"net/http"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/delivery/http/helpers"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

// SeedSuccessResponse is the success response envelope for POST /seed (200).
type SeedSuccessResponse struct {
	Data  map[string]string `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DebugController exposes the seed endpoint and raw collection listings for
// development. None of this is meant for production traffic.
type DebugController struct {
	Logger        *slog.Logger
	Seeder        domain.Seeder
	Events        domain.EventService
	Registrations domain.RegistrationService
	Directory     domain.DirectoryService
}

func NewDebugController(logger *slog.Logger, seeder domain.Seeder, events domain.EventService, registrations domain.RegistrationService, directory domain.DirectoryService) *DebugController {
	return &DebugController{
		Logger:        logger,
		Seeder:        seeder,
		Events:        events,
		Registrations: registrations,
		Directory:     directory,
	}
}

// Seed godoc
// @Summary Load the sample dataset
// @Description Creates a sample college, two students, two events, and three attended registrations. Running it twice fails on the students' unique emails.
// @Tags debug
// @Produce json
// @Success 200 {object} controllers.SeedSuccessResponse "data contains a confirmation message"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /seed [post]
func (c *DebugController) Seed(w http.ResponseWriter, r *http.Request) {
	if err := c.Seeder.Seed(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "Seeded"})
}

// ListEvents godoc
// @Summary Dump all events
// @Tags debug
// @Produce json
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains every event"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /debug/events [get]
func (c *DebugController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.ListEvents(r.Context(), nil)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListStudents godoc
// @Summary Dump all students
// @Tags debug
// @Produce json
// @Success 200 {object} controllers.ListStudentsSuccessResponse "data contains every student"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /debug/students [get]
func (c *DebugController) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := c.Directory.ListStudents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, students)
}

// ListRegistrations godoc
// @Summary Dump all registrations
// @Tags debug
// @Produce json
// @Success 200 {object} controllers.ListRegistrationsSuccessResponse "data contains every registration"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /debug/registrations [get]
func (c *DebugController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	registrations, err := c.Registrations.ListRegistrations(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, registrations)
}
