package commands

import (
	"errors"
	"strings"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrMarkReceiptPaidCommandIsNotConstructed = errors.New(
	"MarkReceiptPaidCommand must be created via NewMarkReceiptPaidCommand constructor",
)

// MarkReceiptPaidCommand records that a receipt was settled.
type MarkReceiptPaidCommand struct { //nolint:recvcheck //using for validation
	receiptID        int64
	paymentReference string

	guard guard.ConstructorGuard
}

// NewMarkReceiptPaidCommand requires a positive receipt id.
// The payment reference is optional and bounded by MaxPaymentReferenceLength.
func NewMarkReceiptPaidCommand(receiptID int64, paymentReference string) (MarkReceiptPaidCommand, error) {
	if receiptID <= 0 {
		return MarkReceiptPaidCommand{}, errs.NewValueIsRequiredError("receipt id")
	}
	paymentReference = strings.TrimSpace(paymentReference)
	if err := checkLength("payment reference", paymentReference, MaxPaymentReferenceLength); err != nil {
		return MarkReceiptPaidCommand{}, err
	}

	return MarkReceiptPaidCommand{
		receiptID:        receiptID,
		paymentReference: paymentReference,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReceiptPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkReceiptPaidCommandIsNotConstructed)
}

// ReceiptID returns the receipt being settled.
func (c MarkReceiptPaidCommand) ReceiptID() int64 {
	return c.receiptID
}

// PaymentReference returns the trimmed reference, possibly empty.
func (c MarkReceiptPaidCommand) PaymentReference() string {
	return c.paymentReference
}
