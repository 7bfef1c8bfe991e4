package usecase

import (
	"context"
	"errors"
	"fmt"

	"levelup/model"
	"levelup/repository"
	"levelup/utils"

	"github.com/sirupsen/logrus"
)

// ProgressUpdate reports what one logged activity did to the profile.
type ProgressUpdate struct {
	Progress
	NewBadges []string
}

// ProgressService owns the user_stats profile: the self-healing read and the
// locked stats-then-badges pipeline run after each activity.
type ProgressService struct {
	stats     StatsStore
	evaluator *BadgeEvaluator
	locker    ProgressLocker
}

func NewProgressService(stats StatsStore, evaluator *BadgeEvaluator, locker ProgressLocker) *ProgressService {
	return &ProgressService{
		stats:     stats,
		evaluator: evaluator,
		locker:    locker,
	}
}

// GetStats returns the profile, creating the default one if it is missing.
func (svc *ProgressService) GetStats(ctx context.Context) (*model.UserStats, error) {
	stats, err := svc.stats.GetUserStats(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return svc.createDefaultStats(ctx)
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RecordActivity applies an activity to the profile and then re-evaluates the
// built-in badges, holding the progress lock for both steps.
func (svc *ProgressService) RecordActivity(ctx context.Context, date string, durationMinutes int) (*ProgressUpdate, error) {
	log := utils.WithContext(ctx)

	release, err := svc.locker.Acquire(ctx)
	if err != nil {
		utils.TrackError("progress", "lock_failed")
		return nil, fmt.Errorf("acquire progress lock: %w", err)
	}
	defer release()

	current, err := svc.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	progress, err := ApplyActivity(*current, date, durationMinutes)
	if err != nil {
		utils.TrackError("progress", "invalid_stored_date")
		return nil, err
	}

	if err := svc.stats.ReplaceUserStats(ctx, &progress.Stats); err != nil {
		return nil, err
	}
	utils.TrackProgress(progress.XPGained, progress.LevelsGained)

	newBadges, err := svc.evaluator.Evaluate(ctx, progress.Stats)
	if err != nil {
		return nil, fmt.Errorf("evaluate badges: %w", err)
	}

	log.WithFields(logrus.Fields{
		"xp_gained":     progress.XPGained,
		"level":         progress.Stats.Level,
		"levels_gained": progress.LevelsGained,
		"streak":        progress.Stats.CurrentStreak,
		"streak_change": progress.Streak.String(),
		"new_badges":    newBadges,
	}).Info("Progress updated")

	return &ProgressUpdate{Progress: progress, NewBadges: newBadges}, nil
}

func (svc *ProgressService) createDefaultStats(ctx context.Context) (*model.UserStats, error) {
	stats := model.DefaultUserStats()
	if err := svc.stats.InsertUserStats(ctx, stats); err != nil {
		return nil, err
	}
	utils.WithContext(ctx).Warn("User stats profile was missing, created default")
	return stats, nil
}
