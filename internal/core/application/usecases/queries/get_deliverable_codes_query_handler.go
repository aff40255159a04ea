package queries

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/trackcode"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDeliverableCodesQueryHandler reads a customer's codes grouped by day.
type GetDeliverableCodesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliverableCodesQueryHandler requires a GORM connection.
func NewGetDeliverableCodesQueryHandler(db *gorm.DB) GetDeliverableCodesQueryHandler {
	return GetDeliverableCodesQueryHandler{db: db}
}

// Handle returns the days newest first; codes within a day are ordered by code.
func (h GetDeliverableCodesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliverableCodesQuery,
) ([]DeliverableDay, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			to_char(tc.updated_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
			tc.id,
			tc.code,
			tc.status,
			tc.description,
			tc.weight,
			EXISTS (SELECT 1 FROM receipt_items ri WHERE ri.track_code_id = tc.id) AS billed
		FROM track_codes tc
		WHERE tc.owner_id = ? AND tc.status IN ?
		ORDER BY day DESC, tc.code
	`, query.OwnerID().Bytes(), []string{trackcode.Delivered.String(), trackcode.Ready.String()}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]DeliverableDay, 0)
	for rows.Next() {
		var day, status string
		var code DeliverableCode
		var weight decimal.NullDecimal

		err = rows.Scan(&day, &code.ID, &code.Code, &status, &code.Description, &weight, &code.Billed)
		if err != nil {
			return nil, err
		}

		code.Status, err = trackcode.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		if weight.Valid {
			w, weightErr := kernel.NewWeight(weight.Decimal)
			if weightErr != nil {
				return nil, weightErr
			}
			code.Weight = &w
		}

		if len(days) == 0 || days[len(days)-1].Date != day {
			days = append(days, DeliverableDay{Date: day})
		}
		current := &days[len(days)-1]
		current.Codes = append(current.Codes, code)
		if code.Weight != nil {
			current.TotalWeight = current.TotalWeight.Add(*code.Weight)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}
