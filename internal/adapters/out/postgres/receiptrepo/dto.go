// Package receiptrepo persists receipts and their items.
package receiptrepo

import (
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/receipt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptDTO is the receipts row.
type ReceiptDTO struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	OwnerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalWeight      decimal.Decimal `gorm:"type:numeric(9,3);not null"`
	TotalPrice       int64           `gorm:"type:bigint;not null"`
	PickupPoint      string          `gorm:"type:varchar(100);not null;default:''"`
	PaymentLink      string          `gorm:"type:varchar(500);not null;default:''"`
	PaymentReference string          `gorm:"type:varchar(100);not null;default:''"`
	IsPaid           bool            `gorm:"not null;default:false"`
	PaidAt           *time.Time
	CreatedAt        time.Time `gorm:"not null;index"`
}

func (ReceiptDTO) TableName() string {
	return "receipts"
}

// ReceiptItemDTO binds one track code to one receipt. The unique index on
// track_code_id prevents billing a code twice.
type ReceiptItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	ReceiptID   int64           `gorm:"not null;index"`
	TrackCodeID int64           `gorm:"not null;uniqueIndex:uq_receipt_items_track_code"`
	Weight      decimal.Decimal `gorm:"type:numeric(6,3);not null"`
}

func (ReceiptItemDTO) TableName() string {
	return "receipt_items"
}

// itemRow is an item joined with its track code value.
type itemRow struct {
	TrackCodeID int64
	Code        string
	Weight      decimal.Decimal
}

func fromDomain(r *receipt.Receipt) ReceiptDTO {
	return ReceiptDTO{
		ID:               r.ID(),
		OwnerID:          r.Owner().Bytes(),
		TotalWeight:      r.TotalWeight().Decimal(),
		TotalPrice:       r.TotalPrice(),
		PickupPoint:      r.PickupPoint(),
		PaymentLink:      r.PaymentLink(),
		PaymentReference: r.PaymentReference(),
		IsPaid:           r.IsPaid(),
		PaidAt:           r.PaidAt(),
		CreatedAt:        r.CreatedAt(),
	}
}

func itemsFromDomain(receiptID int64, items []receipt.Item) []ReceiptItemDTO {
	dtos := make([]ReceiptItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ReceiptItemDTO{
			ReceiptID:   receiptID,
			TrackCodeID: item.TrackCodeID,
			Weight:      item.Weight.Decimal(),
		})
	}
	return dtos
}

func toDomain(dto ReceiptDTO, rows []itemRow) (*receipt.Receipt, error) {
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewTotalWeight(dto.TotalWeight)
	if err != nil {
		return nil, err
	}

	items := make([]receipt.Item, 0, len(rows))
	for _, row := range rows {
		w, weightErr := kernel.NewWeight(row.Weight)
		if weightErr != nil {
			return nil, weightErr
		}
		items = append(items, receipt.Item{TrackCodeID: row.TrackCodeID, Code: row.Code, Weight: w})
	}

	return receipt.RestoreReceipt(
		dto.ID,
		ownerID,
		dto.CreatedAt,
		dto.IsPaid,
		dto.PaidAt,
		dto.PaymentReference,
		total,
		dto.TotalPrice,
		dto.PickupPoint,
		dto.PaymentLink,
		items,
	)
}
