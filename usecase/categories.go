package usecase

import (
	"context"
	"time"

	"levelup/dto"
	"levelup/model"
	"levelup/utils"
)

type CategoriesService struct {
	categories CategoryStore
	clock      utils.Clock
}

func NewCategoriesService(categories CategoryStore, clock utils.Clock) *CategoriesService {
	return &CategoriesService{categories: categories, clock: clock}
}

func (svc *CategoriesService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return svc.categories.ListCategories(ctx)
}

func (svc *CategoriesService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*model.Category, error) {
	category := &model.Category{
		ID:        utils.NewID(),
		Name:      req.Name,
		Icon:      req.Icon,
		Color:     req.Color,
		IsCustom:  true,
		CreatedAt: svc.clock.Now().UTC().Truncate(time.Millisecond),
	}
	if req.IsCustom != nil {
		category.IsCustom = *req.IsCustom
	}

	if err := svc.categories.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	utils.WithContext(ctx).WithField("category_id", category.ID).Info("Category created")
	return category, nil
}

func (svc *CategoriesService) DeleteCategory(ctx context.Context, categoryID string) error {
	return svc.categories.DeleteCategory(ctx, categoryID)
}
