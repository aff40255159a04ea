// Package discountrepo persists customer discounts.
package discountrepo

import (
	"time"

	"cargo/internal/core/domain/model/discount"
	"cargo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerDiscountDTO is the customer_discounts row.
type CustomerDiscountDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_customer_discounts_user_active,priority:1"`
	AmountPerKg decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	IsTemporary bool            `gorm:"not null;default:false"`
	Active      bool            `gorm:"not null;index:idx_customer_discounts_user_active,priority:2"`
	Comment     string          `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time       `gorm:"not null"`
}

func (CustomerDiscountDTO) TableName() string {
	return "customer_discounts"
}

func fromDomain(d *discount.Discount) CustomerDiscountDTO {
	return CustomerDiscountDTO{
		ID:          d.ID(),
		UserID:      d.User().Bytes(),
		AmountPerKg: d.AmountPerKg().Decimal(),
		IsTemporary: d.IsTemporary(),
		Active:      d.IsActive(),
		Comment:     d.Comment(),
		CreatedAt:   d.CreatedAt(),
	}
}

func toDomain(dto CustomerDiscountDTO) (*discount.Discount, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	rate, err := kernel.NewRate(dto.AmountPerKg)
	if err != nil {
		return nil, err
	}

	return discount.RestoreDiscount(dto.ID, userID, rate, dto.IsTemporary, dto.Active, dto.Comment, dto.CreatedAt)
}
