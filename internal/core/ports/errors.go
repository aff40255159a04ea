package ports

import "errors"

var (
	// ErrTrackCodeExists is returned when registering a code that is already known.
	ErrTrackCodeExists = errors.New("track code already exists")

	// ErrTrackCodeBilled is returned when a receipt item references a code
	// that another receipt already billed.
	ErrTrackCodeBilled = errors.New("track code is already billed")

	// ErrBarcodeCollision is returned when a package barcode is already taken.
	// Issuers retry with a fresh barcode.
	ErrBarcodeCollision = errors.New("barcode collision")
)
