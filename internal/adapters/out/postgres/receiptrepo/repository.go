package receiptrepo

import (
	"context"
	"errors"

	"cargo/internal/adapters/out/postgres/pgerr"
	"cargo/internal/core/domain/model/receipt"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	uniqueItemIndex = "uq_receipt_items_track_code"
	itemBatchSize   = 500
)

// GormReceiptRepository implements ports.ReceiptRepository using GORM.
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a new GORM receipt repository.
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// Add inserts the receipt header and its items. Must run inside a
// transaction so a concurrent billing of any item rolls the header back.
func (r *GormReceiptRepository) Add(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Omit("ID").Create(&dto).Error; err != nil {
		return err
	}

	items := itemsFromDomain(dto.ID, aggregate.Items())
	if len(items) > 0 {
		if err := db.Omit("ID").CreateInBatches(&items, itemBatchSize).Error; err != nil {
			if pgerr.IsUniqueViolation(err, uniqueItemIndex) {
				return ports.ErrTrackCodeBilled
			}
			return err
		}
	}

	aggregate.AssignID(dto.ID)
	return nil
}

// Update writes the payment state only.
func (r *GormReceiptRepository) Update(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ReceiptDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"is_paid":           aggregate.IsPaid(),
			"paid_at":           aggregate.PaidAt(),
			"payment_reference": aggregate.PaymentReference(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("receipt", aggregate.ID())
	}
	return nil
}

// Get loads a receipt with its items.
func (r *GormReceiptRepository) Get(ctx context.Context, id int64) (*receipt.Receipt, error) {
	return r.load(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate loads a receipt and locks its row until the transaction ends.
func (r *GormReceiptRepository) GetForUpdate(ctx context.Context, id int64) (*receipt.Receipt, error) {
	return r.load(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormReceiptRepository) load(ctx context.Context, query *gorm.DB, id int64) (*receipt.Receipt, error) {
	var dto ReceiptDTO
	if err := query.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("receipt", id)
		}
		return nil, err
	}

	var rows []itemRow
	err := r.db.WithContext(ctx).
		Table("receipt_items ri").
		Select("ri.track_code_id, tc.code, ri.weight").
		Joins("JOIN track_codes tc ON tc.id = ri.track_code_id").
		Where("ri.receipt_id = ?", id).
		Order("ri.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, rows)
}
