package discountrepo

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/discount"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDiscountRepository implements ports.DiscountRepository using GORM.
type GormDiscountRepository struct {
	db *gorm.DB
}

// NewGormDiscountRepository creates a new GORM discount repository.
func NewGormDiscountRepository(db *gorm.DB) *GormDiscountRepository {
	return &GormDiscountRepository{db: db}
}

// Add saves a new discount and assigns its id.
func (r *GormDiscountRepository) Add(ctx context.Context, d *discount.Discount) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	if err := r.db.WithContext(ctx).Omit("ID").Create(&dto).Error; err != nil {
		return err
	}

	d.AssignID(dto.ID)
	return nil
}

// Update persists the active flag; amount and kind are immutable.
func (r *GormDiscountRepository) Update(ctx context.Context, d *discount.Discount) error {
	if err := d.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CustomerDiscountDTO{}).
		Where("id = ?", d.ID()).
		Update("active", d.IsActive())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("discount", d.ID())
	}
	return nil
}

// Get retrieves a discount by id.
func (r *GormDiscountRepository) Get(ctx context.Context, id int64) (*discount.Discount, error) {
	var dto CustomerDiscountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("discount", id)
		}
		return nil, err
	}
	return toDomain(dto)
}

// LockActive locks every active discount of the user, newest first.
func (r *GormDiscountRepository) LockActive(ctx context.Context, userID kernel.UUID) ([]*discount.Discount, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CustomerDiscountDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND active", userID.Bytes()).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	discounts := make([]*discount.Discount, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		discounts = append(discounts, d)
	}
	return discounts, nil
}
