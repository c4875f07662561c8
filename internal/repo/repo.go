package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrStaleVersion reports that a guarded update matched the row id but not the
// version the caller read, meaning another writer got there first.
var ErrStaleVersion = errors.New("row version is stale")

type GormRepo struct {
	DB *gorm.DB
}

// resolveNoRows tells a stale write apart from a missing row after a guarded
// update affected nothing.
func (r *GormRepo) resolveNoRows(tx *gorm.DB, model any, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return ErrStaleVersion
}
