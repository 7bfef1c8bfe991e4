package usecase

import (
	"context"
	"time"

	"levelup/dto"
	"levelup/model"
	"levelup/utils"
)

// GoalsService stores goals as-is; progress is not tracked against activities.
type GoalsService struct {
	goals GoalStore
	clock utils.Clock
}

func NewGoalsService(goals GoalStore, clock utils.Clock) *GoalsService {
	return &GoalsService{goals: goals, clock: clock}
}

func (svc *GoalsService) ListGoals(ctx context.Context) ([]*model.Goal, error) {
	return svc.goals.ListGoals(ctx)
}

func (svc *GoalsService) CreateGoal(ctx context.Context, req *dto.CreateGoalRequest) (*model.Goal, error) {
	goal := &model.Goal{
		ID:              utils.NewID(),
		CategoryID:      req.CategoryID,
		CategoryName:    req.CategoryName,
		Period:          req.Period,
		CurrentProgress: 0,
		CreatedAt:       svc.clock.Now().UTC().Truncate(time.Millisecond),
	}
	if req.Target != nil {
		goal.Target = *req.Target
	}

	if err := svc.goals.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (svc *GoalsService) DeleteGoal(ctx context.Context, goalID string) error {
	return svc.goals.DeleteGoal(ctx, goalID)
}
