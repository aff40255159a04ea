package queries

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrGetCustomersWithReadyCodesQueryIsNotConstructed = errors.New(
	"GetCustomersWithReadyCodesQuery must be created via NewGetCustomersWithReadyCodesQuery constructor",
)

// GetCustomersWithReadyCodesQuery lists customers who have parcels waiting
// at the pickup point, the picker of the bulk issuance screen.
type GetCustomersWithReadyCodesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCustomersWithReadyCodesQuery() GetCustomersWithReadyCodesQuery {
	return GetCustomersWithReadyCodesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCustomersWithReadyCodesQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersWithReadyCodesQueryIsNotConstructed)
}

// ReadyCustomer is a customer with at least one ready code.
type ReadyCustomer struct {
	UserID     kernel.UUID
	Username   string
	ReadyCount int
}
