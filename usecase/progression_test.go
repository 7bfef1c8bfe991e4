package usecase

import (
	"testing"

	"levelup/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestApplyActivityLevelUp(t *testing.T) {
	stats := model.UserStats{ID: model.UserStatsID, Level: 1, XP: 95}

	progress, err := ApplyActivity(stats, "2025-01-01", 10)
	require.NoError(t, err)

	assert.Equal(t, 100, progress.XPGained)
	assert.Equal(t, 2, progress.Stats.Level)
	assert.Equal(t, 95, progress.Stats.XP)
	assert.Equal(t, 1, progress.LevelsGained)
}

func TestApplyActivityCrossesSeveralLevels(t *testing.T) {
	// 1000 XP: clears 100, 200, 300 and then exactly the 400 needed for level 4.
	progress, err := ApplyActivity(model.UserStats{Level: 1}, "2025-01-01", 100)
	require.NoError(t, err)

	assert.Equal(t, 5, progress.Stats.Level)
	assert.Equal(t, 0, progress.Stats.XP)
	assert.Equal(t, 4, progress.LevelsGained)
}

func TestApplyActivityXPInvariant(t *testing.T) {
	stats := model.UserStats{Level: 1}
	for _, duration := range []int{0, 1, 9, 10, 37, 60, 240, 1, 0, 500} {
		before := stats
		progress, err := ApplyActivity(stats, "2025-01-01", duration)
		require.NoError(t, err)
		stats = progress.Stats

		assert.Equal(t, duration*XPPerMinute, progress.XPGained)
		assert.Less(t, stats.XP, XPPerLevel*stats.Level)
		assert.GreaterOrEqual(t, stats.XP, 0)
		assert.GreaterOrEqual(t, stats.Level, before.Level)

		// Total XP ever earned is preserved across the rollover.
		assert.Equal(t, totalXP(before)+duration*XPPerMinute, totalXP(stats))
	}
}

func totalXP(s model.UserStats) int {
	total := s.XP
	for level := 1; level < s.Level; level++ {
		total += XPPerLevel * level
	}
	return total
}

func TestApplyActivityZeroAndNegativeDuration(t *testing.T) {
	stats := model.UserStats{Level: 2, XP: 50}

	progress, err := ApplyActivity(stats, "2025-01-01", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, progress.Stats.Level)
	assert.Equal(t, 50, progress.Stats.XP)
	assert.Equal(t, 1, progress.Stats.TotalActivities)

	progress, err = ApplyActivity(stats, "2025-01-01", -3)
	require.NoError(t, err)
	assert.Equal(t, -30, progress.XPGained)
	assert.Equal(t, 20, progress.Stats.XP)
	assert.Equal(t, 2, progress.Stats.Level)
}

func TestApplyActivityStreak(t *testing.T) {
	base := model.UserStats{
		Level:            1,
		CurrentStreak:    3,
		LongestStreak:    5,
		TotalActivities:  10,
		LastActivityDate: strPtr("2025-01-01"),
	}

	tests := []struct {
		name        string
		stats       model.UserStats
		date        string
		wantStreak  int
		wantLongest int
		wantChange  StreakChange
	}{
		{
			name:        "first activity ever",
			stats:       model.UserStats{Level: 1},
			date:        "2025-01-01",
			wantStreak:  1,
			wantLongest: 1,
			wantChange:  StreakStarted,
		},
		{
			name:        "next day extends",
			stats:       base,
			date:        "2025-01-02",
			wantStreak:  4,
			wantLongest: 5,
			wantChange:  StreakExtended,
		},
		{
			name:        "gap resets",
			stats:       base,
			date:        "2025-01-04",
			wantStreak:  1,
			wantLongest: 5,
			wantChange:  StreakBroken,
		},
		{
			name:        "same day leaves streak",
			stats:       base,
			date:        "2025-01-01",
			wantStreak:  3,
			wantLongest: 5,
			wantChange:  StreakSameDay,
		},
		{
			name:        "backdated leaves streak",
			stats:       base,
			date:        "2024-12-20",
			wantStreak:  3,
			wantLongest: 5,
			wantChange:  StreakBackdated,
		},
		{
			name: "extension raises longest",
			stats: model.UserStats{
				Level:            1,
				CurrentStreak:    5,
				LongestStreak:    5,
				LastActivityDate: strPtr("2024-12-31"),
			},
			date:        "2025-01-01",
			wantStreak:  6,
			wantLongest: 6,
			wantChange:  StreakExtended,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, err := ApplyActivity(tt.stats, tt.date, 5)
			require.NoError(t, err)

			assert.Equal(t, tt.wantChange, progress.Streak)
			assert.Equal(t, tt.wantStreak, progress.Stats.CurrentStreak)
			assert.Equal(t, tt.wantLongest, progress.Stats.LongestStreak)
			assert.Equal(t, tt.stats.TotalActivities+1, progress.Stats.TotalActivities)
			require.NotNil(t, progress.Stats.LastActivityDate)
			assert.Equal(t, tt.date, *progress.Stats.LastActivityDate)
		})
	}
}

func TestApplyActivityDoesNotMutateInput(t *testing.T) {
	last := "2025-01-01"
	stats := model.UserStats{Level: 1, LastActivityDate: &last}

	_, err := ApplyActivity(stats, "2025-01-02", 30)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-01", last)
	assert.Equal(t, 1, stats.Level)
	assert.Equal(t, 0, stats.TotalActivities)
}

func TestApplyActivityRejectsMalformedStoredDate(t *testing.T) {
	stats := model.UserStats{Level: 1, LastActivityDate: strPtr("01/02/2025")}

	_, err := ApplyActivity(stats, "2025-01-02", 30)
	assert.Error(t, err)
}

func TestStreakChangeString(t *testing.T) {
	assert.Equal(t, "extended", StreakExtended.String())
	assert.Equal(t, "backdated", StreakBackdated.String())
	assert.Equal(t, "StreakChange(42)", StreakChange(42).String())
}
