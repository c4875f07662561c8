package repo

import (
	"context"

	"github.com/Skotchmaster/catalog_service/internal/models"
)

func (r *GormRepo) GetCategories(ctx context.Context) ([]models.Category, error) {
	var items []models.Category
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category := models.Category{}
	if err := r.DB.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	category.Version = 1
	return r.DB.WithContext(ctx).Create(category).Error
}

// ReplaceCategory overwrites the whole row, guarded by the version the caller
// read. Returns ErrStaleVersion on a concurrent write, gorm.ErrRecordNotFound
// when the id does not exist.
func (r *GormRepo) ReplaceCategory(ctx context.Context, category *models.Category) error {
	tx := r.DB.WithContext(ctx)
	res := tx.Model(&models.Category{}).
		Where("id = ? AND version = ?", category.ID, category.Version).
		Updates(map[string]any{
			"name":    category.Name,
			"version": category.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.resolveNoRows(tx, &models.Category{}, category.ID)
	}
	category.Version++
	return nil
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	tx := r.DB.WithContext(ctx)
	var category models.Category
	if err := tx.First(&category, id).Error; err != nil {
		return err
	}
	return tx.Delete(&category).Error
}
