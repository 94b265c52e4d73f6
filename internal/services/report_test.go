package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportRepo returns canned report rows and records the arguments it saw.
type fakeReportRepo struct {
	report        *domain.EventReport
	counts        []*domain.EventRegistrationCount
	participation int
	activity      []*domain.StudentActivity

	gotEventID   int64
	gotStudentID int64
	gotFilter    domain.EventFilter
	gotCollegeID *int64
	gotLimit     int

	err error // if set, all calls return this error
}

func (f *fakeReportRepo) EventReport(ctx context.Context, eventID int64) (*domain.EventReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotEventID = eventID
	return f.report, nil
}

func (f *fakeReportRepo) EventPopularity(ctx context.Context, filter domain.EventFilter) ([]*domain.EventRegistrationCount, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotFilter = filter
	return f.counts, nil
}

func (f *fakeReportRepo) EventsFlexible(ctx context.Context, filter domain.EventFilter) ([]*domain.EventRegistrationCount, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotFilter = filter
	return f.counts, nil
}

func (f *fakeReportRepo) StudentParticipation(ctx context.Context, studentID int64) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.gotStudentID = studentID
	return f.participation, nil
}

func (f *fakeReportRepo) TopActiveStudents(ctx context.Context, collegeID *int64, limit int) ([]*domain.StudentActivity, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotCollegeID = collegeID
	f.gotLimit = limit
	return f.activity, nil
}

func TestReportService_EventReport(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	t.Run("returns aggregates", func(t *testing.T) {
		repo := &fakeReportRepo{report: &domain.EventReport{TotalRegistrations: 4, AttendancePercentage: 50, AverageFeedback: 4.5}}
		svc := NewReportService(repo, timeout)

		report, err := svc.EventReport(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), repo.gotEventID)
		assert.Equal(t, 4, report.TotalRegistrations)
		assert.Equal(t, 50.0, report.AttendancePercentage)
		assert.Equal(t, 4.5, report.AverageFeedback)
	})

	t.Run("repo error", func(t *testing.T) {
		repo := &fakeReportRepo{err: errors.New("db down")}
		svc := NewReportService(repo, timeout)

		_, err := svc.EventReport(ctx, 7)
		require.Error(t, err)
	})
}

func TestReportService_EventPopularity(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	t.Run("passes filter through", func(t *testing.T) {
		eventType := "Workshop"
		collegeID := int64(1)
		repo := &fakeReportRepo{counts: []*domain.EventRegistrationCount{{EventID: 1, Name: "Hackathon", Registrations: 3}}}
		svc := NewReportService(repo, timeout)

		counts, err := svc.EventPopularity(ctx, domain.EventFilter{Type: &eventType, CollegeID: &collegeID})
		require.NoError(t, err)
		require.Len(t, counts, 1)
		require.NotNil(t, repo.gotFilter.Type)
		assert.Equal(t, "Workshop", *repo.gotFilter.Type)
		require.NotNil(t, repo.gotFilter.CollegeID)
		assert.Equal(t, int64(1), *repo.gotFilter.CollegeID)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		svc := NewReportService(&fakeReportRepo{}, timeout)

		counts, err := svc.EventPopularity(ctx, domain.EventFilter{})
		require.NoError(t, err)
		require.NotNil(t, counts)
		require.Len(t, counts, 0)
	})

	t.Run("repo error", func(t *testing.T) {
		svc := NewReportService(&fakeReportRepo{err: errors.New("db down")}, timeout)

		_, err := svc.EventPopularity(ctx, domain.EventFilter{})
		require.Error(t, err)
	})
}

func TestReportService_EventsFlexible(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	repo := &fakeReportRepo{counts: []*domain.EventRegistrationCount{
		{EventID: 1, Name: "Hackathon", Registrations: 3},
		{EventID: 2, Name: "Tech Fest", Registrations: 2},
	}}
	svc := NewReportService(repo, timeout)

	counts, err := svc.EventsFlexible(ctx, domain.EventFilter{})
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, int64(1), counts[0].EventID)
	assert.Equal(t, int64(2), counts[1].EventID)
}

func TestReportService_StudentParticipation(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	t.Run("wraps attended count", func(t *testing.T) {
		repo := &fakeReportRepo{participation: 2}
		svc := NewReportService(repo, timeout)

		participation, err := svc.StudentParticipation(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, int64(9), repo.gotStudentID)
		assert.Equal(t, 2, participation.AttendedEvents)
	})

	t.Run("zero attendance", func(t *testing.T) {
		svc := NewReportService(&fakeReportRepo{}, timeout)

		participation, err := svc.StudentParticipation(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, 0, participation.AttendedEvents)
	})

	t.Run("repo error", func(t *testing.T) {
		svc := NewReportService(&fakeReportRepo{err: errors.New("db down")}, timeout)

		_, err := svc.StudentParticipation(ctx, 9)
		require.Error(t, err)
	})
}

func TestReportService_TopActiveStudents(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	t.Run("caps the list at three", func(t *testing.T) {
		repo := &fakeReportRepo{activity: []*domain.StudentActivity{
			{StudentID: 1, Name: "Alice", Attendances: 3},
			{StudentID: 2, Name: "Bob", Attendances: 2},
			{StudentID: 3, Name: "Cleo", Attendances: 1},
		}}
		svc := NewReportService(repo, timeout)

		students, err := svc.TopActiveStudents(ctx, nil)
		require.NoError(t, err)
		require.Len(t, students, 3)
		assert.Equal(t, 3, repo.gotLimit)
		assert.Nil(t, repo.gotCollegeID)
	})

	t.Run("passes college filter through", func(t *testing.T) {
		collegeID := int64(2)
		repo := &fakeReportRepo{}
		svc := NewReportService(repo, timeout)

		students, err := svc.TopActiveStudents(ctx, &collegeID)
		require.NoError(t, err)
		require.NotNil(t, students)
		require.NotNil(t, repo.gotCollegeID)
		assert.Equal(t, int64(2), *repo.gotCollegeID)
	})

	t.Run("repo error", func(t *testing.T) {
		svc := NewReportService(&fakeReportRepo{err: errors.New("db down")}, timeout)

		_, err := svc.TopActiveStudents(ctx, nil)
		require.Error(t, err)
	})
}
