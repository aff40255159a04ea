package queries

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrListReceiptsQueryIsNotConstructed = errors.New(
	"ListReceiptsQuery must be created via NewListReceiptsQuery constructor",
)

// DefaultReceiptPageSize is the number of receipts fetched per round trip.
const DefaultReceiptPageSize = 50

// ListReceiptsQuery lists a customer's receipts, newest first.
//
// Example:
//
//	query, err := NewListReceiptsQuery(customerID, 0)
//	if err != nil {
//	    return err
//	}
//	for receipt, err := range handler.Handle(ctx, query) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(receipt.ID, receipt.TotalPrice)
//	}
type ListReceiptsQuery struct {
	ownerID  kernel.UUID
	pageSize int

	guard guard.ConstructorGuard
}

// NewListReceiptsQuery creates the query. A non-positive pageSize selects
// DefaultReceiptPageSize.
func NewListReceiptsQuery(ownerID kernel.UUID, pageSize int) (ListReceiptsQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return ListReceiptsQuery{}, errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	if pageSize <= 0 {
		pageSize = DefaultReceiptPageSize
	}

	return ListReceiptsQuery{
		ownerID:  ownerID,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListReceiptsQuery) Validate() error {
	return q.guard.Validate(ErrListReceiptsQueryIsNotConstructed)
}

func (q ListReceiptsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

func (q ListReceiptsQuery) PageSize() int {
	return q.pageSize
}

// ReceiptView is the read model of a receipt header.
type ReceiptView struct {
	ID               int64
	CreatedAt        time.Time
	TotalWeight      kernel.Weight
	TotalPrice       int64
	ItemCount        int
	PickupPoint      string
	PaymentLink      string
	IsPaid           bool
	PaidAt           *time.Time
	PaymentReference string
}
