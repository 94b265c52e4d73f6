package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/delivery/http/helpers"
	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// CreateCollegeRequest is the request body for POST /colleges.
type CreateCollegeRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CreateCollegeRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// CreateCollegeSuccessResponse is the success response envelope for POST /colleges (200).
type CreateCollegeSuccessResponse struct {
	Data  *domain.College   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateStudentRequest is the request body for POST /students.
type CreateStudentRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CollegeID int64  `json:"college_id"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (c CreateStudentRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, "email format is invalid")
	}
	if c.CollegeID < 1 {
		errs = append(errs, "college_id is required")
	}
	return errs
}

// CreateStudentSuccessResponse is the success response envelope for POST /students (200).
type CreateStudentSuccessResponse struct {
	Data  *domain.Student   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListStudentsSuccessResponse is the success response envelope for GET /debug/students (200).
type ListStudentsSuccessResponse struct {
	Data  []*domain.Student `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type DirectoryController struct {
	Logger  *slog.Logger
	Service domain.DirectoryService
}

func NewDirectoryController(logger *slog.Logger, svc domain.DirectoryService) *DirectoryController {
	return &DirectoryController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateCollege godoc
// @Summary Create a college
// @Description Creates a college. Students and events belong to exactly one college.
// @Tags directory
// @Accept json
// @Produce json
// @Param college body CreateCollegeRequest true "College data"
// @Success 200 {object} controllers.CreateCollegeSuccessResponse "data contains the created college"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /colleges [post]
func (c *DirectoryController) CreateCollege(w http.ResponseWriter, r *http.Request) {
	var req CreateCollegeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	college, err := c.Service.CreateCollege(r.Context(), req.Name)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, college)
}

// CreateStudent godoc
// @Summary Create a student
// @Description Creates a student in a college. The email address is normalized to lower case and must be unique across all students.
// @Tags directory
// @Accept json
// @Produce json
// @Param student body CreateStudentRequest true "Student data"
// @Success 200 {object} controllers.CreateStudentSuccessResponse "data contains the created student"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (college does not exist)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students [post]
func (c *DirectoryController) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req CreateStudentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	student, err := c.Service.CreateStudent(r.Context(), req.Name, req.Email, req.CollegeID)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already in use")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "college not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, student)
}
