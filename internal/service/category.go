package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skotchmaster/catalog_service/internal/models"
	"github.com/Skotchmaster/catalog_service/internal/repo"
	"gorm.io/gorm"
)

type CategoryService struct {
	Repo *repo.GormRepo
}

func validateCategory(category *models.Category) error {
	if category.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return nil
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.GetCategories(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	return s.Repo.CreateCategory(ctx, category)
}

// UpdateCategory replaces the whole row. The body id must match the addressed
// id, a mismatch is rejected as not found before any write.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, category *models.Category) error {
	if category.ID != id {
		return ErrNotFound
	}
	if err := validateCategory(category); err != nil {
		return err
	}
	if err := s.Repo.ReplaceCategory(ctx, category); err != nil {
		switch {
		case errors.Is(err, repo.ErrStaleVersion):
			return ErrStaleWrite
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrNotFound
		default:
			return err
		}
	}
	return nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
