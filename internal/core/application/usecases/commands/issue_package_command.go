package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrIssuePackageCommandIsNotConstructed = errors.New(
	"IssuePackageCommand must be created via NewIssuePackageCommand constructor",
)

// IssuePackageCommand hands over all ready parcels of a customer as one
// sequence numbered package.
//
// Example:
//
//	cmd, err := NewIssuePackageCommand(customerID, "Almaty-1", "", &operatorID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNothingToIssue) {
//	    // customer has nothing waiting at the pickup point
//	}
type IssuePackageCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	pickupPoint string
	comment     string
	operatorID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewIssuePackageCommand validates the customer and the pickup point.
// Both problems are reported together.
func NewIssuePackageCommand(
	customerID kernel.UUID,
	pickupPoint string,
	comment string,
	operatorID *kernel.UUID,
) (IssuePackageCommand, error) {
	cmd := IssuePackageCommand{
		comment:    strings.TrimSpace(comment),
		operatorID: operatorID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPickupPoint(pickupPoint),
	); err != nil {
		return IssuePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IssuePackageCommand) Validate() error {
	return c.guard.Validate(ErrIssuePackageCommandIsNotConstructed)
}

// CustomerID returns the customer whose ready parcels are packed.
func (c IssuePackageCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupPoint returns where the package is issued.
func (c IssuePackageCommand) PickupPoint() string {
	return c.pickupPoint
}

func (c IssuePackageCommand) Comment() string {
	return c.comment
}

// OperatorID is nil when the handover was not attributed to an operator.
func (c IssuePackageCommand) OperatorID() *kernel.UUID {
	return c.operatorID
}

func (c *IssuePackageCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	c.customerID = customerID
	return nil
}

func (c *IssuePackageCommand) setPickupPoint(pickupPoint string) error {
	pickupPoint = strings.TrimSpace(pickupPoint)
	if pickupPoint == "" {
		return errs.NewValueIsRequiredError("pickup point")
	}
	if err := checkLength("pickup point", pickupPoint, MaxPickupPointLength); err != nil {
		return err
	}
	c.pickupPoint = pickupPoint
	return nil
}
