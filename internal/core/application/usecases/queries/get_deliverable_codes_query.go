package queries

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/trackcode"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrGetDeliverableCodesQueryIsNotConstructed = errors.New(
	"GetDeliverableCodesQuery must be created via NewGetDeliverableCodesQuery constructor",
)

// GetDeliverableCodesQuery returns a customer's delivered and ready codes
// grouped by the day they reached that status.
type GetDeliverableCodesQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliverableCodesQuery(ownerID kernel.UUID) (GetDeliverableCodesQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetDeliverableCodesQuery{}, errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	return GetDeliverableCodesQuery{ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliverableCodesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliverableCodesQueryIsNotConstructed)
}

func (q GetDeliverableCodesQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// DeliverableCode is one parcel of a DeliverableDay.
type DeliverableCode struct {
	ID          int64
	Code        string
	Status      trackcode.Status
	Description string
	Weight      *kernel.Weight
	Billed      bool
}

// DeliverableDay groups the codes updated on one UTC calendar day.
type DeliverableDay struct {
	Date        string // YYYY-MM-DD
	Codes       []DeliverableCode
	TotalWeight kernel.Weight
}
