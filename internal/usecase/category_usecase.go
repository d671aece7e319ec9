package usecase

import (
	"context"
	"strings"
	"time"

	"dormigo/internal/domain/entity"
	"dormigo/internal/domain/repository"
	"dormigo/pkg/errors"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *CategoryUseCase) GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

func (uc *CategoryUseCase) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.BadRequest("Category name is required", nil)
	}

	existing, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, category := range existing {
		if strings.EqualFold(category.Name, name) {
			return nil, errors.Conflict("Category already exists")
		}
	}

	now := time.Now()
	category := &entity.Category{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.categoryRepo.Delete(ctx, id)
}
