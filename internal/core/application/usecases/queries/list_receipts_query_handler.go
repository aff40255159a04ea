package queries

import (
	"context"
	"iter"
	"time"

	"cargo/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListReceiptsQueryHandler streams receipts with keyset pagination on
// (created_at, id), so each page is an index range scan regardless of depth.
type ListReceiptsQueryHandler struct {
	db *gorm.DB
}

// NewListReceiptsQueryHandler requires a GORM connection.
func NewListReceiptsQueryHandler(db *gorm.DB) ListReceiptsQueryHandler {
	return ListReceiptsQueryHandler{db: db}
}

type receiptCursor struct {
	createdAt time.Time
	id        int64
}

// Handle returns a lazy sequence. Nothing is read until the caller ranges
// over it, every range starts again from the newest receipt, and a failed
// page is yielded as the error of the last element.
func (h ListReceiptsQueryHandler) Handle(ctx context.Context, query ListReceiptsQuery) iter.Seq2[ReceiptView, error] {
	return func(yield func(ReceiptView, error) bool) {
		if err := query.Validate(); err != nil {
			yield(ReceiptView{}, err)
			return
		}

		var cursor *receiptCursor
		for {
			page, err := h.page(ctx, query, cursor)
			if err != nil {
				yield(ReceiptView{}, err)
				return
			}

			for _, view := range page {
				if !yield(view, nil) {
					return
				}
			}

			if len(page) < query.PageSize() {
				return
			}
			last := page[len(page)-1]
			cursor = &receiptCursor{createdAt: last.CreatedAt, id: last.ID}
		}
	}
}

func (h ListReceiptsQueryHandler) page(
	ctx context.Context,
	query ListReceiptsQuery,
	cursor *receiptCursor,
) ([]ReceiptView, error) {
	sql := `
		SELECT
			r.id,
			r.created_at,
			r.total_weight,
			r.total_price,
			(SELECT count(*) FROM receipt_items ri WHERE ri.receipt_id = r.id) AS item_count,
			r.pickup_point,
			r.payment_link,
			r.is_paid,
			r.paid_at,
			r.payment_reference
		FROM receipts r
		WHERE r.owner_id = ?`
	args := []any{query.OwnerID().Bytes()}
	if cursor != nil {
		sql += ` AND (r.created_at, r.id) < (?, ?)`
		args = append(args, cursor.createdAt, cursor.id)
	}
	sql += ` ORDER BY r.created_at DESC, r.id DESC LIMIT ?`
	args = append(args, query.PageSize())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]ReceiptView, 0, query.PageSize())
	for rows.Next() {
		var view ReceiptView
		var totalWeight decimal.Decimal

		err = rows.Scan(
			&view.ID,
			&view.CreatedAt,
			&totalWeight,
			&view.TotalPrice,
			&view.ItemCount,
			&view.PickupPoint,
			&view.PaymentLink,
			&view.IsPaid,
			&view.PaidAt,
			&view.PaymentReference,
		)
		if err != nil {
			return nil, err
		}

		view.TotalWeight, err = kernel.NewTotalWeight(totalWeight)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
