package usecase

import (
	"fmt"

	"levelup/model"
	"levelup/utils"
)

const (
	XPPerMinute = 10
	// XPPerLevel scales the threshold: clearing level N costs N*XPPerLevel.
	XPPerLevel = 100
)

// StreakChange classifies how an activity date relates to the last one logged.
type StreakChange int

const (
	StreakStarted   StreakChange = iota // no previous activity
	StreakSameDay                       // same calendar day, streak unchanged
	StreakExtended                      // exactly one day later
	StreakBroken                        // gap of two or more days, restarts at 1
	StreakBackdated                     // earlier than the last date, streak unchanged
)

func (s StreakChange) String() string {
	switch s {
	case StreakStarted:
		return "started"
	case StreakSameDay:
		return "same_day"
	case StreakExtended:
		return "extended"
	case StreakBroken:
		return "broken"
	case StreakBackdated:
		return "backdated"
	default:
		return fmt.Sprintf("StreakChange(%d)", int(s))
	}
}

// Progress is the outcome of applying one activity to the profile.
type Progress struct {
	Stats        model.UserStats
	XPGained     int
	LevelsGained int
	Streak       StreakChange
}

// ApplyActivity returns the profile after logging an activity of
// durationMinutes on date. The input is not modified. Duration is not
// validated; zero or negative values grant zero or negative XP.
func ApplyActivity(stats model.UserStats, date string, durationMinutes int) (Progress, error) {
	change, err := classifyStreak(stats.LastActivityDate, date)
	if err != nil {
		return Progress{}, err
	}

	next := stats
	progress := Progress{
		XPGained: durationMinutes * XPPerMinute,
		Streak:   change,
	}

	next.XP += progress.XPGained
	// The threshold grows with every level, so this has to loop.
	for next.XP >= XPPerLevel*next.Level {
		next.XP -= XPPerLevel * next.Level
		next.Level++
		progress.LevelsGained++
	}

	switch change {
	case StreakStarted, StreakBroken:
		next.CurrentStreak = 1
	case StreakExtended:
		next.CurrentStreak++
	case StreakSameDay, StreakBackdated:
	}

	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}
	next.TotalActivities++

	lastDate := date
	next.LastActivityDate = &lastDate

	progress.Stats = next
	return progress, nil
}

func classifyStreak(lastDate *string, date string) (StreakChange, error) {
	if lastDate == nil || *lastDate == "" {
		return StreakStarted, nil
	}

	diff, err := utils.DaysBetween(*lastDate, date)
	if err != nil {
		return 0, fmt.Errorf("compare activity dates: %w", err)
	}

	switch {
	case diff == 0:
		return StreakSameDay, nil
	case diff == 1:
		return StreakExtended, nil
	case diff > 1:
		return StreakBroken, nil
	default:
		return StreakBackdated, nil
	}
}
