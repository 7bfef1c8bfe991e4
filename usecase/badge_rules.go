package usecase

import (
	"context"
	"fmt"

	"levelup/model"
	"levelup/utils"
)

// BadgeRule ties a built-in badge id to the profile condition that earns it.
type BadgeRule struct {
	BadgeID string
	Earned  func(stats model.UserStats) bool
}

// BuiltinBadgeRules are the only rules evaluated. Custom badges carry a
// condition_type/condition_value but have no rule here.
var BuiltinBadgeRules = []BadgeRule{
	{model.BadgeFirstStep, func(s model.UserStats) bool { return s.TotalActivities >= 1 }},
	{model.BadgeWeekWarrior, func(s model.UserStats) bool { return s.CurrentStreak >= 7 }},
	{model.BadgeCenturion, func(s model.UserStats) bool { return s.TotalActivities >= 100 }},
	{model.BadgeLevel5, func(s model.UserStats) bool { return s.Level >= 5 }},
	{model.BadgeLevel10, func(s model.UserStats) bool { return s.Level >= 10 }},
	{model.BadgeMonthMaster, func(s model.UserStats) bool { return s.CurrentStreak >= 30 }},
}

// QualifyingBadges lists the built-in badge ids whose condition holds for stats.
func QualifyingBadges(stats model.UserStats) []string {
	var ids []string
	for _, rule := range BuiltinBadgeRules {
		if rule.Earned(stats) {
			ids = append(ids, rule.BadgeID)
		}
	}
	return ids
}

type BadgeEvaluator struct {
	badges BadgeStore
	clock  utils.Clock
}

func NewBadgeEvaluator(badges BadgeStore, clock utils.Clock) *BadgeEvaluator {
	return &BadgeEvaluator{badges: badges, clock: clock}
}

// Evaluate marks every qualifying built-in badge as earned and returns the ids
// that were not earned before this pass. Qualifying badges are re-stamped with
// the evaluation time even when already earned; nothing is ever un-earned.
func (e *BadgeEvaluator) Evaluate(ctx context.Context, stats model.UserStats) ([]string, error) {
	qualifying := QualifyingBadges(stats)
	if len(qualifying) == 0 {
		return nil, nil
	}

	existing, err := e.badges.ListBadges(ctx)
	if err != nil {
		return nil, fmt.Errorf("load badges: %w", err)
	}
	earnedBefore := make(map[string]bool, len(existing))
	for _, badge := range existing {
		earnedBefore[badge.ID] = badge.IsEarned
	}

	now := e.clock.Now().UTC()
	var newlyEarned []string
	for _, badgeID := range qualifying {
		if err := e.badges.MarkBadgeEarned(ctx, badgeID, now); err != nil {
			return newlyEarned, err
		}

		wasEarned, present := earnedBefore[badgeID]
		if present && !wasEarned {
			newlyEarned = append(newlyEarned, badgeID)
			utils.TrackBadgeEarned(badgeID)
		}
	}
	return newlyEarned, nil
}
