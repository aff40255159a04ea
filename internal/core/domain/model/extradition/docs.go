// Package extradition models the handover of parcels to their recipients.
//
// The package includes:
//   - Extradition: a handover session at a pickup point
//   - Package: the barcoded set of claimed track codes given to the customer
//   - Barcode: sequence numbered (PKG-000001) or handover (EP...) identifiers
//
// Packages are created only after their codes were claimed, so a package can
// never reference a code that is still in transit.
package extradition
