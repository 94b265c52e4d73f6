package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rajkumar2004725/Campus-Event-Management/internal/domain"
)

func TestEventRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	college := seedCollege(t, db, "Sample College")

	repo := NewEventRepository(db)
	event := domain.NewEvent("Hackathon", "Workshop", time.Date(2025, 9, 10, 10, 0, 0, 0, time.UTC), college.ID)
	require.NoError(t, repo.Create(ctx, event))
	require.NotZero(t, event.ID)

	got, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, event.ID, got.ID)
	require.Equal(t, "Hackathon", got.Name)
	require.Equal(t, "Workshop", got.Type)
	require.Equal(t, time.Date(2025, 9, 10, 10, 0, 0, 0, time.UTC), got.Date)
	require.Equal(t, college.ID, got.CollegeID)
	require.False(t, got.Cancelled)
}

func TestEventRepository_Create_UnknownCollege(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	repo := NewEventRepository(db)
	event := domain.NewEvent("Hackathon", "Workshop", time.Now(), 99)
	err := repo.Create(ctx, event)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestEventRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := NewEventRepository(db).GetByID(ctx, 42)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	collegeA := seedCollege(t, db, "College A")
	collegeB := seedCollege(t, db, "College B")

	repo := NewEventRepository(db)
	first := seedEvent(t, db, "Hackathon", "Workshop", collegeA.ID)
	second := seedEvent(t, db, "Tech Fest", "Fest", collegeB.ID)
	third := seedEvent(t, db, "AI Seminar", "Seminar", collegeA.ID)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []int64{first.ID, second.ID, third.ID}, []int64{all[0].ID, all[1].ID, all[2].ID})

	filtered, err := repo.List(ctx, &collegeA.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, e := range filtered {
		require.Equal(t, collegeA.ID, e.CollegeID)
	}

	none := int64(99)
	empty, err := repo.List(ctx, &none)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestEventRepository_SetCancelled(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	college := seedCollege(t, db, "Sample College")
	event := seedEvent(t, db, "Hackathon", "Workshop", college.ID)

	repo := NewEventRepository(db)
	got, err := repo.SetCancelled(ctx, event.ID, true)
	require.NoError(t, err)
	require.True(t, got.Cancelled)

	// Setting the same value again is a no-op.
	got, err = repo.SetCancelled(ctx, event.ID, true)
	require.NoError(t, err)
	require.True(t, got.Cancelled)

	got, err = repo.SetCancelled(ctx, event.ID, false)
	require.NoError(t, err)
	require.False(t, got.Cancelled)

	_, err = repo.SetCancelled(ctx, 42, true)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}
