package repository_test

import (
	"context"
	"testing"
	"time"

	"levelup/config"
	"levelup/model"
	"levelup/repository"
	"levelup/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoRoundTrip(t *testing.T) {
	db, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	names := config.CollectionNames{
		Categories: "categories",
		Activities: "activities",
		Goals:      "goals",
		Badges:     "badges",
		UserStats:  "user_stats",
	}
	require.NoError(t, repository.SetupIndexes(ctx, db, names))

	activities := repository.GetActivitiesRepo(db, names.Activities)
	created := time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)
	for _, a := range []*model.Activity{
		{ID: "a1", CategoryID: "gym", CategoryName: "Gym", Date: "2025-01-03", StartTime: "07:00", Duration: 30, CreatedAt: created},
		{ID: "a2", CategoryID: "gym", CategoryName: "Gym", Date: "2025-01-05", StartTime: "07:00", Duration: 45, CreatedAt: created},
		{ID: "a3", CategoryID: "study", CategoryName: "Study", Date: "2025-01-04", StartTime: "20:00", Duration: 60, CreatedAt: created},
	} {
		require.NoError(t, activities.CreateActivity(ctx, a))
	}

	found, err := activities.FindActivities(ctx, model.ActivityFilter{CategoryID: "gym", StartDate: "2025-01-04"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "a2", found[0].ID)
	assert.Nil(t, found[0].Notes)

	all, err := activities.FindActivities(ctx, model.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a2", "a3", "a1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	require.NoError(t, activities.DeleteActivity(ctx, "a1"))
	assert.ErrorIs(t, activities.DeleteActivity(ctx, "a1"), repository.ErrNotFound)

	stats := repository.GetStatsRepo(db, names.UserStats)
	_, err = stats.GetUserStats(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, stats.InsertUserStats(ctx, model.DefaultUserStats()))
	last := "2025-01-05"
	updated := &model.UserStats{ID: model.UserStatsID, Level: 2, XP: 50, TotalActivities: 2, CurrentStreak: 1, LongestStreak: 1, LastActivityDate: &last}
	require.NoError(t, stats.ReplaceUserStats(ctx, updated))

	got, err := stats.GetUserStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}
