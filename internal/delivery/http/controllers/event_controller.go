package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/delivery/http/helpers"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

// pathID parses the named path parameter as a positive integer id. The second
// return is false when the parameter is missing or not a positive integer.
func pathID(r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Date      time.Time `json:"date"`
	CollegeID int64     `json:"college_id"`
}

// Validate implements Validator. Returns error messages for required fields.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Type) == "" {
		errs = append(errs, "type is required")
	}
	if c.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	if c.CollegeID < 1 {
		errs = append(errs, "college_id is required")
	}
	return errs
}

// CreateEventSuccessResponse is the success response envelope for POST /events (200).
type CreateEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SetCancelledSuccessResponse is the success response envelope for PATCH /events/{id} (200).
type SetCancelledSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

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
// @Description Creates a campus event for a college. The id is server-generated and the event starts out not cancelled. Date is RFC 3339.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 200 {object} controllers.CreateEventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (college does not exist)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.Name, req.Type, req.Date, req.CollegeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "college not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// ListEvents godoc
// @Summary List events
// @Description Lists events in creation order, optionally restricted to one college.
// @Tags events
// @Produce json
// @Param college_id query int false "Only events belonging to this college"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains the events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	collegeID, err := helpers.ParseOptionalInt64(r, "college_id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	events, err := c.Service.ListEvents(r.Context(), collegeID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// SetCancelledRequest is the request body for PATCH /events/{id}.
type SetCancelledRequest struct {
	Cancelled *bool `json:"cancelled"`
}

// Validate implements Validator.
func (s SetCancelledRequest) Validate() []string {
	var errs []string
	if s.Cancelled == nil {
		errs = append(errs, "cancelled is required")
	}
	return errs
}

// SetCancelled godoc
// @Summary Cancel or restore an event
// @Description Sets the cancelled flag of an event. Cancelled events keep their registrations but drop out of the popularity reports.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param body body SetCancelledRequest true "Cancelled flag"
// @Success 200 {object} controllers.SetCancelledSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [patch]
func (c *EventController) SetCancelled(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid event id")
		return
	}
	var req SetCancelledRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.SetCancelled(r.Context(), id, *req.Cancelled)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}
