package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skotchmaster/catalog_service/internal/models"
	"github.com/Skotchmaster/catalog_service/internal/repo"
	"gorm.io/gorm"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func validateProduct(product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if product.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if product.CategoryID == 0 {
		return fmt.Errorf("%w: category_id is required", ErrValidation)
	}
	return nil
}

func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	return s.Repo.GetProductsByCategory(ctx, categoryID)
}

// CreateProduct persists the row and then re-reads the referenced category so
// the response carries it. The stored row keeps only the foreign key, so a
// category that cannot be read back just leaves the field empty.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return err
	}
	if category, err := s.Repo.GetCategory(ctx, product.CategoryID); err == nil {
		product.Category = category
	}
	return nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, product *models.Product) error {
	if product.ID != id {
		return ErrNotFound
	}
	if err := validateProduct(product); err != nil {
		return err
	}
	if err := s.Repo.ReplaceProduct(ctx, product); err != nil {
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

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
