package queries

import (
	"errors"
	"time"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrGetBillableOwnersQueryIsNotConstructed = errors.New(
	"GetBillableOwnersQuery must be created via NewGetBillableOwnersQuery constructor",
)

// GetBillableOwnersQuery finds customers with parcels a receipt could bill
// as of the given instant. The nightly receipt job iterates over them.
type GetBillableOwnersQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewGetBillableOwnersQuery(asOf time.Time) (GetBillableOwnersQuery, error) {
	if asOf.IsZero() {
		return GetBillableOwnersQuery{}, errs.NewValueIsRequiredError("as of")
	}
	return GetBillableOwnersQuery{asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBillableOwnersQuery) Validate() error {
	return q.guard.Validate(ErrGetBillableOwnersQueryIsNotConstructed)
}

func (q GetBillableOwnersQuery) AsOf() time.Time {
	return q.asOf
}
