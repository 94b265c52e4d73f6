package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/delivery/http/helpers"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

// RegisterRequest is the request body for POST /registrations.
type RegisterRequest struct {
	StudentID int64 `json:"student_id"`
	EventID   int64 `json:"event_id"`
}

// Validate implements Validator. Returns error messages for required fields.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if r.StudentID < 1 {
		errs = append(errs, "student_id is required")
	}
	if r.EventID < 1 {
		errs = append(errs, "event_id is required")
	}
	return errs
}

// RegisterSuccessResponse is the success response envelope for POST /registrations (200).
type RegisterSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// MarkAttendedRequest is the request body for PATCH /registrations/{id}.
type MarkAttendedRequest struct {
	Attended *bool `json:"attended"`
}

// Validate implements Validator.
func (m MarkAttendedRequest) Validate() []string {
	var errs []string
	if m.Attended == nil {
		errs = append(errs, "attended is required")
	}
	return errs
}

// MarkAttendedSuccessResponse is the success response envelope for PATCH /registrations/{id} (200).
type MarkAttendedSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// FeedbackRequest is the request body for PATCH /registrations/{id}/feedback.
type FeedbackRequest struct {
	Rating *int `json:"rating"`
}

// Validate implements Validator.
func (f FeedbackRequest) Validate() []string {
	var errs []string
	if f.Rating == nil {
		errs = append(errs, "rating is required")
	}
	return errs
}

// FeedbackSuccessResponse is the success response envelope for PATCH /registrations/{id}/feedback (200).
type FeedbackSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListRegistrationsSuccessResponse is the success response envelope for GET /debug/registrations (200).
type ListRegistrationsSuccessResponse struct {
	Data  []*domain.Registration `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a student for an event
// @Description Registers a student for an event. A student can register for an event only once; the pair is enforced by a storage-level unique constraint.
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body RegisterRequest true "Student and event"
// @Success 200 {object} controllers.RegisterSuccessResponse "data contains the created registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (student or event does not exist)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	registration, err := c.Service.Register(r.Context(), req.StudentID, req.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "student already registered for event")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "student or event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, registration)
}

// MarkAttended godoc
// @Summary Mark a registration as attended
// @Description Records attendance for a registration. Attendance is monotonic: marking twice keeps the first timestamp, and attended=false is rejected.
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path int true "Registration ID"
// @Param body body MarkAttendedRequest true "Attendance flag (must be true)"
// @Success 200 {object} controllers.MarkAttendedSuccessResponse "data contains the updated registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/{id} [patch]
func (c *RegistrationController) MarkAttended(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid registration id")
		return
	}
	var req MarkAttendedRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if !*req.Attended {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "attendance cannot be revoked")
		return
	}
	registration, err := c.Service.MarkAttended(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, registration)
}

// SubmitFeedback godoc
// @Summary Submit feedback for an attended registration
// @Description Stores a 1..5 rating for a registration whose attendance is recorded. Resubmitting overwrites the previous rating.
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path int true "Registration ID"
// @Param body body FeedbackRequest true "Rating (1..5)"
// @Success 200 {object} controllers.FeedbackSuccessResponse "data contains the updated registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (rating out of range or attendance not recorded)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/{id}/feedback [patch]
func (c *RegistrationController) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid registration id")
		return
	}
	var req FeedbackRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	registration, err := c.Service.SubmitFeedback(r.Context(), id, *req.Rating)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRating) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "rating must be between 1 and 5")
			return
		}
		if errors.Is(err, domain.ErrNotAttended) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "cannot submit feedback without attendance")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, registration)
}
