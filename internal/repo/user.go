package repo

import (
	"context"
	"errors"

	"github.com/Skotchmaster/catalog_service/internal/hash"
	"github.com/Skotchmaster/catalog_service/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

func (r *GormRepo) GetUsers(ctx context.Context) ([]models.User, error) {
	var items []models.User
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UserExists checks a username/password pair against the stored hash. Missing
// user and wrong password are reported identically so callers cannot tell
// whether the username exists.
func (r *GormRepo) UserExists(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.Version = 1
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) ReplaceUser(ctx context.Context, user *models.User) error {
	tx := r.DB.WithContext(ctx)
	res := tx.Model(&models.User{}).
		Where("id = ? AND version = ?", user.ID, user.Version).
		Updates(map[string]any{
			"username":      user.Username,
			"password_hash": user.PasswordHash,
			"role":          user.Role,
			"version":       user.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.resolveNoRows(tx, &models.User{}, user.ID)
	}
	user.Version++
	return nil
}

func (r *GormRepo) DeleteUser(ctx context.Context, id uint) error {
	tx := r.DB.WithContext(ctx)
	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		return err
	}
	return tx.Delete(&user).Error
}
