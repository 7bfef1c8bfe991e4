package usecase

import (
	"context"

	"levelup/dto"
	"levelup/model"
	"levelup/utils"
)

type BadgesService struct {
	badges BadgeStore
}

func NewBadgesService(badges BadgeStore) *BadgesService {
	return &BadgesService{badges: badges}
}

func (svc *BadgesService) ListBadges(ctx context.Context) ([]*model.Badge, error) {
	return svc.badges.ListBadges(ctx)
}

// CreateBadge stores a custom badge definition. Its condition is persisted
// but no evaluator rule is attached to it.
func (svc *BadgesService) CreateBadge(ctx context.Context, req *dto.CreateBadgeRequest) (*model.Badge, error) {
	badge := &model.Badge{
		ID:            utils.NewID(),
		Name:          req.Name,
		Description:   req.Description,
		Icon:          req.Icon,
		IsEarned:      false,
		EarnedDate:    nil,
		ConditionType: req.ConditionType,
	}
	if req.ConditionValue != nil {
		badge.ConditionValue = *req.ConditionValue
	}

	if err := svc.badges.CreateBadge(ctx, badge); err != nil {
		return nil, err
	}
	return badge, nil
}

func (svc *BadgesService) DeleteBadge(ctx context.Context, badgeID string) error {
	return svc.badges.DeleteBadge(ctx, badgeID)
}
