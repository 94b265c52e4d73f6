package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

type reportRepository struct {
	DB *sql.DB
}

func NewReportRepository(db *sql.DB) domain.ReportRepository {
	return &reportRepository{
		DB: db,
	}
}

func (r *reportRepository) EventReport(ctx context.Context, eventID int64) (*domain.EventReport, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE attended),
			COALESCE(AVG(feedback_rating), 0)
		FROM registrations
		WHERE event_id = $1
	`
	var total, attended int
	var avg float64
	err := r.DB.QueryRowContext(ctx, query, eventID).Scan(&total, &attended, &avg)
	if err != nil {
		return nil, err
	}
	report := &domain.EventReport{
		TotalRegistrations: total,
		AverageFeedback:    avg,
	}
	if total > 0 {
		report.AttendancePercentage = float64(attended) / float64(total) * 100
	}
	return report, nil
}

func (r *reportRepository) EventPopularity(ctx context.Context, filter domain.EventFilter) ([]*domain.EventRegistrationCount, error) {
	return r.countByEvent(ctx, filter, "ORDER BY COUNT(r.id) DESC, e.id")
}

func (r *reportRepository) EventsFlexible(ctx context.Context, filter domain.EventFilter) ([]*domain.EventRegistrationCount, error) {
	return r.countByEvent(ctx, filter, "ORDER BY e.id")
}

// countByEvent counts registrations per non-cancelled event matching the
// filter. Cancelled events are left out so rankings reflect events that can
// still take place.
func (r *reportRepository) countByEvent(ctx context.Context, filter domain.EventFilter, orderBy string) ([]*domain.EventRegistrationCount, error) {
	where := []string{"NOT e.cancelled"}
	args := []interface{}{}
	n := 1
	if filter.Type != nil {
		where = append(where, fmt.Sprintf("e.type = $%d", n))
		args = append(args, *filter.Type)
		n++
	}
	if filter.CollegeID != nil {
		where = append(where, fmt.Sprintf("e.college_id = $%d", n))
		args = append(args, *filter.CollegeID)
		n++
	}
	query := fmt.Sprintf(`
		SELECT e.id, e.name, COUNT(r.id)
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		WHERE %s
		GROUP BY e.id, e.name
		%s
	`, strings.Join(where, " AND "), orderBy)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make([]*domain.EventRegistrationCount, 0)
	for rows.Next() {
		c := &domain.EventRegistrationCount{}
		if err := rows.Scan(&c.EventID, &c.Name, &c.Registrations); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *reportRepository) StudentParticipation(ctx context.Context, studentID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM registrations
		WHERE student_id = $1 AND attended
	`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, studentID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// TopActiveStudents ranks students by attended registrations. The college
// filter applies to the student's own college.
func (r *reportRepository) TopActiveStudents(ctx context.Context, collegeID *int64, limit int) ([]*domain.StudentActivity, error) {
	query := `
		SELECT s.id, s.name, COUNT(r.id)
		FROM students s
		JOIN registrations r ON r.student_id = s.id
		WHERE r.attended
		GROUP BY s.id, s.name
		ORDER BY COUNT(r.id) DESC, s.id
		LIMIT $1
	`
	args := []interface{}{limit}
	if collegeID != nil {
		query = `
		SELECT s.id, s.name, COUNT(r.id)
		FROM students s
		JOIN registrations r ON r.student_id = s.id
		WHERE r.attended AND s.college_id = $2
		GROUP BY s.id, s.name
		ORDER BY COUNT(r.id) DESC, s.id
		LIMIT $1
	`
		args = append(args, *collegeID)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	activity := make([]*domain.StudentActivity, 0)
	for rows.Next() {
		a := &domain.StudentActivity{}
		if err := rows.Scan(&a.StudentID, &a.Name, &a.Attendances); err != nil {
			return nil, err
		}
		activity = append(activity, a)
	}
	return activity, rows.Err()
}
