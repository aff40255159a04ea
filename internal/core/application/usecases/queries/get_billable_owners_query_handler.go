package queries

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/trackcode"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBillableOwnersQueryHandler lists the owners the daily receipt job bills.
type GetBillableOwnersQueryHandler struct {
	db *gorm.DB
}

// NewGetBillableOwnersQueryHandler requires a GORM connection.
func NewGetBillableOwnersQueryHandler(db *gorm.DB) GetBillableOwnersQueryHandler {
	return GetBillableOwnersQueryHandler{db: db}
}

// Handle applies the same eligibility rule as receipt generation, without
// locking. Owners are ordered by id.
func (h GetBillableOwnersQueryHandler) Handle(ctx context.Context, query GetBillableOwnersQuery) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT tc.owner_id
		FROM track_codes tc
		WHERE tc.status IN ?
			AND tc.updated_at <= ?
			AND NOT EXISTS (SELECT 1 FROM receipt_items ri WHERE ri.track_code_id = tc.id)
		ORDER BY tc.owner_id
	`, []string{trackcode.Delivered.String(), trackcode.Ready.String()}, query.AsOf()).Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	owners := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		owner, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		owners = append(owners, owner)
	}
	return owners, nil
}
