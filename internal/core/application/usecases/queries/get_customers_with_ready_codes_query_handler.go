package queries

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/trackcode"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersWithReadyCodesQueryHandler lists customers with parcels to collect.
type GetCustomersWithReadyCodesQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomersWithReadyCodesQueryHandler(db *gorm.DB) GetCustomersWithReadyCodesQueryHandler {
	return GetCustomersWithReadyCodesQueryHandler{db: db}
}

// Handle returns customers ordered by username.
func (h GetCustomersWithReadyCodesQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersWithReadyCodesQuery,
) ([]ReadyCustomer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.username,
			count(*) AS ready_count
		FROM track_codes tc
		JOIN users u ON u.id = tc.owner_id
		WHERE tc.status = ?
		GROUP BY u.id, u.username
		ORDER BY u.username
	`, trackcode.Ready.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]ReadyCustomer, 0)
	for rows.Next() {
		var customer ReadyCustomer
		var id uuid.UUID

		if err = rows.Scan(&id, &customer.Username, &customer.ReadyCount); err != nil {
			return nil, err
		}

		customer.UserID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
