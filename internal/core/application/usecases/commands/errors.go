package commands

import "errors"

var (
	// ErrNoEligibleParcels is returned when a customer has nothing to bill.
	ErrNoEligibleParcels = errors.New("no eligible parcels to bill")

	// ErrNothingToIssue is returned when a customer has no ready parcels.
	ErrNothingToIssue = errors.New("no ready parcels to issue")

	// ErrIssuanceFailed is returned when no unique barcode could be issued.
	ErrIssuanceFailed = errors.New("package issuance failed")

	// ErrTrackCodeAlreadyBilled is returned when a concurrent receipt billed
	// one of the selected codes first.
	ErrTrackCodeAlreadyBilled = errors.New("track code is already billed")

	// ErrTrackCodeOfAnotherCustomer is reported for handover lines naming a
	// code the recipient does not own.
	ErrTrackCodeOfAnotherCustomer = errors.New("track code belongs to another customer")
)
