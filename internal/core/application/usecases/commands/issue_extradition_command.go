package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrIssueExtraditionCommandIsNotConstructed = errors.New(
	"IssueExtraditionCommand must be created via NewIssueExtraditionCommand constructor",
)

// IssueExtraditionCommand hands over an explicit list of codes, one package
// per code. rawCodes is operator input with one code per line; blank lines
// and repeated codes are ignored.
type IssueExtraditionCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID
	operatorID  *kernel.UUID
	pickupPoint string
	comment     string
	receiptID   *int64
	codes       []string

	guard guard.ConstructorGuard
}

// NewIssueExtraditionCommand validates the recipient, the pickup point and
// the code list, reporting every problem at once.
func NewIssueExtraditionCommand(
	recipientID kernel.UUID,
	operatorID *kernel.UUID,
	pickupPoint string,
	comment string,
	receiptID *int64,
	rawCodes string,
) (IssueExtraditionCommand, error) {
	cmd := IssueExtraditionCommand{
		operatorID: operatorID,
		comment:    strings.TrimSpace(comment),
		receiptID:  receiptID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipientID(recipientID),
		cmd.setPickupPoint(pickupPoint),
		cmd.setCodes(rawCodes),
	); err != nil {
		return IssueExtraditionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueExtraditionCommand) Validate() error {
	return c.guard.Validate(ErrIssueExtraditionCommandIsNotConstructed)
}

// RecipientID returns the customer collecting the parcels.
func (c IssueExtraditionCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// OperatorID returns the operator, nil when unknown.
func (c IssueExtraditionCommand) OperatorID() *kernel.UUID {
	return c.operatorID
}

// PickupPoint returns where the handover happens.
func (c IssueExtraditionCommand) PickupPoint() string {
	return c.pickupPoint
}

func (c IssueExtraditionCommand) Comment() string {
	return c.comment
}

// ReceiptID is the receipt the recipient presented, nil when none.
func (c IssueExtraditionCommand) ReceiptID() *int64 {
	return c.receiptID
}

// Codes are the distinct codes in input order.
func (c IssueExtraditionCommand) Codes() []string {
	return c.codes
}

func (c *IssueExtraditionCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipient", err)
	}
	c.recipientID = recipientID
	return nil
}

func (c *IssueExtraditionCommand) setPickupPoint(pickupPoint string) error {
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

func (c *IssueExtraditionCommand) setCodes(raw string) error {
	codes := splitLines(raw)
	if len(codes) == 0 {
		return errs.NewValueIsRequiredError("track codes")
	}
	c.codes = codes
	return nil
}
