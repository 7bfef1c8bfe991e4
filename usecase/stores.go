package usecase

import (
	"context"
	"time"

	"levelup/model"
)

// Store interfaces are satisfied by the Mongo repositories in package
// repository and by the in-memory store in testutils.

type CategoryStore interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	InsertCategories(ctx context.Context, categories []*model.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
	CountCategories(ctx context.Context) (int64, error)
}

type ActivityStore interface {
	CreateActivity(ctx context.Context, activity *model.Activity) error
	FindActivities(ctx context.Context, filter model.ActivityFilter) ([]*model.Activity, error)
	DeleteActivity(ctx context.Context, activityID string) error
}

type GoalStore interface {
	ListGoals(ctx context.Context) ([]*model.Goal, error)
	CreateGoal(ctx context.Context, goal *model.Goal) error
	DeleteGoal(ctx context.Context, goalID string) error
}

type BadgeStore interface {
	ListBadges(ctx context.Context) ([]*model.Badge, error)
	CreateBadge(ctx context.Context, badge *model.Badge) error
	InsertBadges(ctx context.Context, badges []*model.Badge) error
	DeleteBadge(ctx context.Context, badgeID string) error
	CountBadges(ctx context.Context) (int64, error)
	MarkBadgeEarned(ctx context.Context, badgeID string, earnedAt time.Time) error
}

type StatsStore interface {
	GetUserStats(ctx context.Context) (*model.UserStats, error)
	InsertUserStats(ctx context.Context, stats *model.UserStats) error
	ReplaceUserStats(ctx context.Context, stats *model.UserStats) error
}

// ProgressLocker serializes the profile read-modify-write. The returned
// release func must be called exactly once.
type ProgressLocker interface {
	Acquire(ctx context.Context) (release func(), err error)
}
