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

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID   map[int64]*domain.Event
	nextID int64
	err    error // if set, all calls return this error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[int64]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, event *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	event.ID = f.nextID
	f.nextID++
	f.byID[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	event, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (f *fakeEventRepo) List(ctx context.Context, collegeID *int64) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	events := make([]*domain.Event, 0)
	for id := int64(1); id < f.nextID; id++ {
		event, ok := f.byID[id]
		if !ok {
			continue
		}
		if collegeID != nil && event.CollegeID != *collegeID {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

func (f *fakeEventRepo) SetCancelled(ctx context.Context, id int64, cancelled bool) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	event, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	event.Cancelled = cancelled
	return event, nil
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second
	date := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, timeout)

		event, err := svc.CreateEvent(ctx, "Hackathon", "Workshop", date, 1)
		require.NoError(t, err)
		require.NotZero(t, event.ID)
		assert.Equal(t, "Hackathon", event.Name)
		assert.Equal(t, "Workshop", event.Type)
		assert.True(t, event.Date.Equal(date))
		assert.Equal(t, int64(1), event.CollegeID)
		assert.False(t, event.Cancelled)
	})

	t.Run("unknown college", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.err = domain.ErrNotFound
		svc := NewEventService(repo, timeout)

		_, err := svc.CreateEvent(ctx, "Hackathon", "Workshop", date, 99)
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("repo error", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.err = errors.New("db down")
		svc := NewEventService(repo, timeout)

		_, err := svc.CreateEvent(ctx, "Hackathon", "Workshop", date, 1)
		require.Error(t, err)
		require.False(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestEventService_ListEvents(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second
	date := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)

	t.Run("returns all events", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, timeout)
		_, err := svc.CreateEvent(ctx, "Hackathon", "Workshop", date, 1)
		require.NoError(t, err)
		_, err = svc.CreateEvent(ctx, "Tech Fest", "Fest", date, 2)
		require.NoError(t, err)

		events, err := svc.ListEvents(ctx, nil)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "Hackathon", events[0].Name)
		assert.Equal(t, "Tech Fest", events[1].Name)
	})

	t.Run("filters by college", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, timeout)
		_, err := svc.CreateEvent(ctx, "Hackathon", "Workshop", date, 1)
		require.NoError(t, err)
		_, err = svc.CreateEvent(ctx, "Tech Fest", "Fest", date, 2)
		require.NoError(t, err)

		collegeID := int64(2)
		events, err := svc.ListEvents(ctx, &collegeID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Tech Fest", events[0].Name)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), timeout)

		events, err := svc.ListEvents(ctx, nil)
		require.NoError(t, err)
		require.NotNil(t, events)
		require.Len(t, events, 0)
	})

	t.Run("repo error", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.err = errors.New("db down")
		svc := NewEventService(repo, timeout)

		_, err := svc.ListEvents(ctx, nil)
		require.Error(t, err)
	})
}

func TestEventService_SetCancelled(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second
	date := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)

	t.Run("cancels and restores", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, timeout)
		created, err := svc.CreateEvent(ctx, "Hackathon", "Workshop", date, 1)
		require.NoError(t, err)

		event, err := svc.SetCancelled(ctx, created.ID, true)
		require.NoError(t, err)
		assert.True(t, event.Cancelled)

		event, err = svc.SetCancelled(ctx, created.ID, false)
		require.NoError(t, err)
		assert.False(t, event.Cancelled)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), timeout)

		_, err := svc.SetCancelled(ctx, 42, true)
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("repo error", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.err = errors.New("db down")
		svc := NewEventService(repo, timeout)

		_, err := svc.SetCancelled(ctx, 1, true)
		require.Error(t, err)
		require.False(t, errors.Is(err, domain.ErrNotFound))
	})
}
