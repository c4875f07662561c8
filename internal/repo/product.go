package repo

import (
	"context"

	"github.com/Skotchmaster/catalog_service/internal/models"
)

func (r *GormRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Preload("Category").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).Preload("Category").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) GetProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	product.Category = nil
	product.Version = 1
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *GormRepo) ReplaceProduct(ctx context.Context, product *models.Product) error {
	tx := r.DB.WithContext(ctx)
	res := tx.Model(&models.Product{}).
		Where("id = ? AND version = ?", product.ID, product.Version).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"category_id": product.CategoryID,
			"version":     product.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.resolveNoRows(tx, &models.Product{}, product.ID)
	}
	product.Version++
	return nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	tx := r.DB.WithContext(ctx)
	var product models.Product
	if err := tx.First(&product, id).Error; err != nil {
		return err
	}
	return tx.Delete(&product).Error
}
