package controllers

import (
	"log/slog"
	"net/http"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/delivery/http/helpers"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

// EventReportSuccessResponse is the success response envelope for GET /reports/event/{id} (200).
type EventReportSuccessResponse struct {
	Data  *domain.EventReport `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// EventCountsSuccessResponse is the success response envelope for the per-event
// registration count reports (200).
type EventCountsSuccessResponse struct {
	Data  []*domain.EventRegistrationCount `json:"data"`
	Error *helpers.APIError                `json:"error"`
}

// StudentParticipationSuccessResponse is the success response envelope for GET /reports/student-participation/{id} (200).
type StudentParticipationSuccessResponse struct {
	Data  *domain.StudentParticipation `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

// TopActiveStudentsSuccessResponse is the success response envelope for GET /reports/top-active-students (200).
type TopActiveStudentsSuccessResponse struct {
	Data  []*domain.StudentActivity `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

type ReportController struct {
	Logger  *slog.Logger
	Service domain.ReportService
}

func NewReportController(logger *slog.Logger, svc domain.ReportService) *ReportController {
	return &ReportController{
		Logger:  logger,
		Service: svc,
	}
}

// eventFilter builds the event filter shared by the per-event count reports.
// The second return is false when college_id is present but malformed; an
// error response has already been written in that case.
func (c *ReportController) eventFilter(w http.ResponseWriter, r *http.Request) (domain.EventFilter, bool) {
	collegeID, err := helpers.ParseOptionalInt64(r, "college_id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return domain.EventFilter{}, false
	}
	return domain.EventFilter{
		Type:      helpers.ParseOptionalString(r, "type"),
		CollegeID: collegeID,
	}, true
}

// EventReport godoc
// @Summary Registration, attendance, and feedback summary for one event
// @Description Returns total registrations, attendance percentage, and average feedback rating for the event. All three are zero for an event with no registrations.
// @Tags reports
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} controllers.EventReportSuccessResponse "data contains the report"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/event/{id} [get]
func (c *ReportController) EventReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid event id")
		return
	}
	report, err := c.Service.EventReport(r.Context(), id)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}

// EventPopularity godoc
// @Summary Events by registration count, most popular first
// @Description Counts registrations per event, excluding cancelled events, optionally filtered by event type and college. Ties are broken by ascending event id.
// @Tags reports
// @Produce json
// @Param type query string false "Only events of this type"
// @Param college_id query int false "Only events belonging to this college"
// @Success 200 {object} controllers.EventCountsSuccessResponse "data contains one row per event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/event-popularity [get]
func (c *ReportController) EventPopularity(w http.ResponseWriter, r *http.Request) {
	filter, ok := c.eventFilter(w, r)
	if !ok {
		return
	}
	counts, err := c.Service.EventPopularity(r.Context(), filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, counts)
}

// EventsFlexible godoc
// @Summary Events with registration counts, in creation order
// @Description The same rows as the popularity report, ordered by ascending event id instead of registration count.
// @Tags reports
// @Produce json
// @Param type query string false "Only events of this type"
// @Param college_id query int false "Only events belonging to this college"
// @Success 200 {object} controllers.EventCountsSuccessResponse "data contains one row per event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/events [get]
func (c *ReportController) EventsFlexible(w http.ResponseWriter, r *http.Request) {
	filter, ok := c.eventFilter(w, r)
	if !ok {
		return
	}
	counts, err := c.Service.EventsFlexible(r.Context(), filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, counts)
}

// StudentParticipation godoc
// @Summary Number of events a student attended
// @Description Counts the registrations of the student with recorded attendance. Unknown students count zero.
// @Tags reports
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} controllers.StudentParticipationSuccessResponse "data contains the attended event count"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/student-participation/{id} [get]
func (c *ReportController) StudentParticipation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid student id")
		return
	}
	participation, err := c.Service.StudentParticipation(r.Context(), id)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participation)
}

// TopActiveStudents godoc
// @Summary The three most active students
// @Description Lists up to three students with the most attended events, optionally restricted to one college. Ties are broken by ascending student id.
// @Tags reports
// @Produce json
// @Param college_id query int false "Only students belonging to this college"
// @Success 200 {object} controllers.TopActiveStudentsSuccessResponse "data contains at most three rows"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/top-active-students [get]
func (c *ReportController) TopActiveStudents(w http.ResponseWriter, r *http.Request) {
	collegeID, err := helpers.ParseOptionalInt64(r, "college_id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	students, err := c.Service.TopActiveStudents(r.Context(), collegeID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, students)
}
