package commands

import (
	"unicode/utf8"

	"cargo/internal/pkg/errs"
)

// Widths of the text columns operator input ends up in.
const (
	MaxPickupPointLength      = 100
	MaxPaymentReferenceLength = 100
)

// checkLength counts characters, not bytes, the way varchar does.
func checkLength(name, value string, maxLength int) error {
	if n := utf8.RuneCountInString(value); n > maxLength {
		return errs.NewValueIsOutOfRangeError(name+" length", n, 0, maxLength)
	}
	return nil
}
