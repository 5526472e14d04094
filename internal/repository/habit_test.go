package repository

import (
	"context"
	"testing"

	"habitloop/internal/analytics"
	"habitloop/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitRepository_Create(t *testing.T) {
	truncateTables(testDB)
	repo := NewHabitRepository(testDB)
	ctx := context.Background()
	user := createTestUser(t, "creator")

	habit := &models.Habit{UserID: user.ID, Name: "Read", Color: "#22c55e"}
	require.NoError(t, repo.Create(ctx, habit))
	assert.NotZero(t, habit.ID)

	t.Run("duplicate name for same user is rejected", func(t *testing.T) {
		dup := &models.Habit{UserID: user.ID, Name: "Read"}
		err := repo.Create(ctx, dup)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("same name for another user is fine", func(t *testing.T) {
		other := createTestUser(t, "other-creator")
		habit := &models.Habit{UserID: other.ID, Name: "Read"}
		assert.NoError(t, repo.Create(ctx, habit))
	})
}

func TestHabitRepository_GetOwned(t *testing.T) {
	truncateTables(testDB)
	repo := NewHabitRepository(testDB)
	ctx := context.Background()

	owner := createTestUser(t, "owner")
	stranger := createTestUser(t, "stranger")
	habit := createTestHabit(t, owner.ID, "Meditate")

	t.Run("owner can fetch", func(t *testing.T) {
		got, err := repo.GetOwned(ctx, habit.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Meditate", got.Name)
	})

	t.Run("another user's habit looks missing", func(t *testing.T) {
		_, err := repo.GetOwned(ctx, habit.ID, stranger.ID)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.GetOwned(ctx, 9999, owner.ID)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestHabitRepository_ListByUser(t *testing.T) {
	truncateTables(testDB)
	repo := NewHabitRepository(testDB)
	ctx := context.Background()

	user := createTestUser(t, "lister")
	active := createTestHabit(t, user.ID, "Run")
	archived := createTestHabit(t, user.ID, "Journal")
	require.NoError(t, repo.SetArchived(ctx, archived.ID, true))

	habits, err := repo.ListByUser(ctx, user.ID, false)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, active.ID, habits[0].ID)

	all, err := repo.ListByUser(ctx, user.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestHabitRepository_SetArchived_Unarchive(t *testing.T) {
	truncateTables(testDB)
	repo := NewHabitRepository(testDB)
	ctx := context.Background()

	user := createTestUser(t, "archiver")
	habit := createTestHabit(t, user.ID, "Stretch")

	require.NoError(t, repo.SetArchived(ctx, habit.ID, true))
	require.NoError(t, repo.SetArchived(ctx, habit.ID, false))

	got, err := repo.GetOwned(ctx, habit.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, got.Archived)
}

func TestHabitRepository_Delete(t *testing.T) {
	truncateTables(testDB)
	habits := NewHabitRepository(testDB)
	checkIns := NewCheckInRepository(testDB)
	ctx := context.Background()

	user := createTestUser(t, "deleter")
	doomed := createTestHabit(t, user.ID, "Doomed")
	kept := createTestHabit(t, user.ID, "Kept")

	date := models.CivilDate(mustParseDate(t, "2026-08-20"))
	_, err := checkIns.Upsert(ctx, doomed.ID, date)
	require.NoError(t, err)
	_, err = checkIns.Upsert(ctx, kept.ID, date)
	require.NoError(t, err)

	require.NoError(t, habits.Delete(ctx, doomed.ID))

	_, err = habits.GetOwned(ctx, doomed.ID, user.ID)
	assert.Error(t, err)

	// Check-ins go with the habit; other habits keep theirs.
	var count int64
	testDB.Model(&models.CheckIn{}).Where("habit_id = ?", doomed.ID).Count(&count)
	assert.Zero(t, count)
	testDB.Model(&models.CheckIn{}).Where("habit_id = ?", kept.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	t.Run("name is free for reuse after delete", func(t *testing.T) {
		again := &models.Habit{UserID: user.ID, Name: "Doomed"}
		assert.NoError(t, habits.Create(ctx, again))
	})
}

func TestHabitRepository_ArchivedHabitKeepsHistory(t *testing.T) {
	truncateTables(testDB)
	habits := NewHabitRepository(testDB)
	checkIns := NewCheckInRepository(testDB)
	ctx := context.Background()

	user := createTestUser(t, "historian")
	habit := createTestHabit(t, user.ID, "Stretch")
	for _, d := range []string{"2026-08-20", "2026-08-21", "2026-08-22"} {
		_, err := checkIns.Upsert(ctx, habit.ID, mustParseDate(t, d))
		require.NoError(t, err)
	}

	require.NoError(t, habits.SetArchived(ctx, habit.ID, true))

	// Gone from the default listing.
	active, err := habits.ListByUser(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	// Still fetchable by ID, so historical aggregates keep working.
	archived, err := habits.GetOwned(ctx, habit.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, archived.Archived)

	dates, err := checkIns.DatesByHabit(ctx, habit.ID)
	require.NoError(t, err)
	report := analytics.RangeReport(dates,
		mustParseDate(t, "2026-08-19"), mustParseDate(t, "2026-08-23"))
	require.Len(t, report, 5)
	assert.False(t, report[0].Completed)
	assert.True(t, report[1].Completed)
	assert.True(t, report[2].Completed)
	assert.True(t, report[3].Completed)
	assert.False(t, report[4].Completed)
}
