package services

import (
	"cargo/internal/core/domain/model/discount"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/receipt"
)

// ReceiptPricer combines the configured tariff with the customer's discount.
type ReceiptPricer struct {
	unitPrice kernel.Rate
	resolver  DiscountResolver
}

// NewReceiptPricer creates a pricer.
//
// Parameters:
//   - unitPrice: tariff per kilogram before discounts
//   - resolver: picks the customer discount
//
// Returns:
//   - ReceiptPricer: ready to price any number of receipts
func NewReceiptPricer(unitPrice kernel.Rate, resolver DiscountResolver) ReceiptPricer {
	return ReceiptPricer{unitPrice: unitPrice, resolver: resolver}
}

// Tariff returns the rates for one receipt and the discount that has to be
// consumed once the receipt is written.
func (p ReceiptPricer) Tariff(userID kernel.UUID, discounts []*discount.Discount) (receipt.Tariff, *discount.Discount) {
	chosen := p.resolver.Resolve(userID, discounts)
	return receipt.Tariff{
		UnitPrice: p.unitPrice,
		Discount:  p.resolver.AmountPerKg(chosen),
	}, chosen
}

// UnitPrice returns the configured tariff.
func (p ReceiptPricer) UnitPrice() kernel.Rate {
	return p.unitPrice
}

// Consume retires the chosen discount if it was temporary.
func (p ReceiptPricer) Consume(chosen *discount.Discount) (bool, error) {
	return p.resolver.Consume(chosen)
}
