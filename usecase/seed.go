package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"levelup/model"
	"levelup/repository"
	"levelup/utils"
)

func DefaultCategories(now time.Time) []*model.Category {
	return []*model.Category{
		{ID: "study", Name: "Study", Icon: "BookOpen", Color: "#3B82F6", CreatedAt: now},
		{ID: "gaming", Name: "Gaming", Icon: "Gamepad2", Color: "#8B5CF6", CreatedAt: now},
		{ID: "gym", Name: "Gym", Icon: "Dumbbell", Color: "#EF4444", CreatedAt: now},
		{ID: "sleep", Name: "Sleep", Icon: "Moon", Color: "#6366F1", CreatedAt: now},
	}
}

func DefaultBadges() []*model.Badge {
	return []*model.Badge{
		{ID: model.BadgeFirstStep, Name: "First Step", Description: "Log your first activity", Icon: "Footprints"},
		{ID: model.BadgeWeekWarrior, Name: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "Flame"},
		{ID: model.BadgeCenturion, Name: "Centurion", Description: "Log 100 activities", Icon: "Trophy"},
		{ID: model.BadgeLevel5, Name: "Rising Star", Description: "Reach Level 5", Icon: "Star"},
		{ID: model.BadgeLevel10, Name: "Expert", Description: "Reach Level 10", Icon: "Award"},
		{ID: model.BadgeMonthMaster, Name: "Month Master", Description: "Maintain a 30-day streak", Icon: "Crown"},
	}
}

// Seeder installs the default categories, profile and badges. Each part is
// only written when its collection (or the profile) is empty, so running it
// on every start is safe.
type Seeder struct {
	categories CategoryStore
	badges     BadgeStore
	stats      StatsStore
	clock      utils.Clock
}

func NewSeeder(categories CategoryStore, badges BadgeStore, stats StatsStore, clock utils.Clock) *Seeder {
	return &Seeder{
		categories: categories,
		badges:     badges,
		stats:      stats,
		clock:      clock,
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedCategories(ctx); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := s.seedUserStats(ctx); err != nil {
		return fmt.Errorf("seed user stats: %w", err)
	}
	if err := s.seedBadges(ctx); err != nil {
		return fmt.Errorf("seed badges: %w", err)
	}
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	count, err := s.categories.CountCategories(ctx)
	if err != nil || count > 0 {
		return err
	}

	defaults := DefaultCategories(s.clock.Now().UTC().Truncate(time.Millisecond))
	if err := s.categories.InsertCategories(ctx, defaults); err != nil {
		return err
	}
	utils.WithContext(ctx).WithField("count", len(defaults)).Info("Seeded default categories")
	return nil
}

func (s *Seeder) seedUserStats(ctx context.Context) error {
	_, err := s.stats.GetUserStats(ctx)
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if err := s.stats.InsertUserStats(ctx, model.DefaultUserStats()); err != nil {
		return err
	}
	utils.WithContext(ctx).Info("Seeded user stats profile")
	return nil
}

func (s *Seeder) seedBadges(ctx context.Context) error {
	count, err := s.badges.CountBadges(ctx)
	if err != nil || count > 0 {
		return err
	}

	defaults := DefaultBadges()
	if err := s.badges.InsertBadges(ctx, defaults); err != nil {
		return err
	}
	utils.WithContext(ctx).WithField("count", len(defaults)).Info("Seeded default badges")
	return nil
}
