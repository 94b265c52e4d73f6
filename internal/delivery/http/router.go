package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	events *controllers.EventController,
	registrations *controllers.RegistrationController,
	reports *controllers.ReportController,
	directory *controllers.DirectoryController,
	debug *controllers.DebugController,
	health *controllers.HealthController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", events.CreateEvent)
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("PATCH /events/{id}", events.SetCancelled)

	// Registrations
	mux.HandleFunc("POST /registrations", registrations.Register)
	mux.HandleFunc("PATCH /registrations/{id}", registrations.MarkAttended)
	mux.HandleFunc("PATCH /registrations/{id}/feedback", registrations.SubmitFeedback)

	// Reports
	mux.HandleFunc("GET /reports/event/{id}", reports.EventReport)
	mux.HandleFunc("GET /reports/event-popularity", reports.EventPopularity)
	mux.HandleFunc("GET /reports/events", reports.EventsFlexible)
	mux.HandleFunc("GET /reports/student-participation/{id}", reports.StudentParticipation)
	mux.HandleFunc("GET /reports/top-active-students", reports.TopActiveStudents)

	// Directory
	mux.HandleFunc("POST /colleges", directory.CreateCollege)
	mux.HandleFunc("POST /students", directory.CreateStudent)

	// Development helpers
	mux.HandleFunc("POST /seed", debug.Seed)
	mux.HandleFunc("GET /debug/events", debug.ListEvents)
	mux.HandleFunc("GET /debug/students", debug.ListStudents)
	mux.HandleFunc("GET /debug/registrations", debug.ListRegistrations)

	// Operations
	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
