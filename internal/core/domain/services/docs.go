// Package services provides domain services that span several aggregates of
// the parcel pipeline.
//
// The package includes:
//   - DiscountResolver: picks the one discount that prices a receipt
//   - ReceiptPricer: combines the configured tariff with that discount
//   - BarcodeIssuer: produces sequence numbered and handover barcodes
package services
