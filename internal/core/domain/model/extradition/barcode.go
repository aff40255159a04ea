package extradition

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"cargo/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxBarcodeLength is the width of the barcode column.
const MaxBarcodeLength = 32

const (
	packagePrefix  = "PKG-"
	handoverPrefix = "EP"
	handoverLayout = "20060102150405"
	handoverRandom = 12
)

var barcodePattern = regexp.MustCompile(`^(PKG-\d{6,}|EP\d{14}[0-9A-F]{12})$`)

// Barcode is the unique identifier printed on an issued package.
//
// Bulk packages are numbered from a database sequence (PKG-000042),
// per-code handovers carry a timestamp and random suffix
// (EP20250402180000A1B2C3D4E5F6).
type Barcode struct {
	value string
}

// NewPackageBarcode formats a sequence value as a bulk package barcode.
func NewPackageBarcode(seq int64) (Barcode, error) {
	if seq <= 0 {
		return Barcode{}, errs.NewValueIsOutOfRangeError("barcode sequence", seq, 1, "unbounded")
	}
	return Barcode{value: fmt.Sprintf("%s%06d", packagePrefix, seq)}, nil
}

// NewHandoverBarcode builds a per-code handover barcode from the issue time
// and a random identifier.
func NewHandoverBarcode(now time.Time, random uuid.UUID) Barcode {
	hex := strings.ReplaceAll(random.String(), "-", "")
	return Barcode{value: handoverPrefix + now.UTC().Format(handoverLayout) + strings.ToUpper(hex[:handoverRandom])}
}

// ParseBarcode validates a stored or scanned barcode.
func ParseBarcode(s string) (Barcode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Barcode{}, errs.NewValueIsRequiredError("barcode")
	}
	if len(s) > MaxBarcodeLength || !barcodePattern.MatchString(s) {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause("barcode", fmt.Errorf("%q is not a package barcode", s))
	}
	return Barcode{value: s}, nil
}

// String returns the printable barcode.
func (b Barcode) String() string {
	return b.value
}

// IsZero reports whether b is the zero value.
func (b Barcode) IsZero() bool {
	return b.value == ""
}
