package userrepo

import (
	"context"

	"cargo/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormUserDirectory implements ports.UserDirectory over the users table.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a read-only view of the users table.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// Exists reports whether the customer is known.
func (r *GormUserDirectory) Exists(ctx context.Context, userID kernel.UUID) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", userID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
