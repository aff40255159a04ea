package services

import (
	"cargo/internal/core/domain/model/discount"
	"cargo/internal/core/domain/model/kernel"
)

// DiscountResolver picks the single discount that prices a customer's receipt.
//
// Selection rules:
//   - only active discounts of the customer are considered
//   - a temporary discount wins over a standing one
//   - among equals the most recently created wins (ties broken by higher id)
//   - discounts never stack
type DiscountResolver struct{}

// NewDiscountResolver creates a stateless resolver.
//
// Returns:
//   - DiscountResolver: safe for concurrent use
func NewDiscountResolver() DiscountResolver {
	return DiscountResolver{}
}

// Resolve returns the applicable discount or nil when none applies.
func (DiscountResolver) Resolve(userID kernel.UUID, discounts []*discount.Discount) *discount.Discount {
	var chosen *discount.Discount
	for _, d := range discounts {
		if d.Validate() != nil || !d.AppliesTo(userID) {
			continue
		}
		if chosen == nil || preferred(d, chosen) {
			chosen = d
		}
	}
	return chosen
}

// AmountPerKg is the rate of the chosen discount, zero for nil.
func (DiscountResolver) AmountPerKg(chosen *discount.Discount) kernel.Rate {
	if chosen == nil {
		return kernel.Rate{}
	}
	return chosen.AmountPerKg()
}

// Consume deactivates a temporary discount once a receipt used it. It
// reports whether the discount changed and has to be persisted.
func (DiscountResolver) Consume(chosen *discount.Discount) (bool, error) {
	if chosen == nil || !chosen.IsTemporary() {
		return false, nil
	}
	if err := chosen.Deactivate(); err != nil {
		return false, err
	}
	return true, nil
}

func preferred(candidate, current *discount.Discount) bool {
	if candidate.IsTemporary() != current.IsTemporary() {
		return candidate.IsTemporary()
	}
	if !candidate.CreatedAt().Equal(current.CreatedAt()) {
		return candidate.CreatedAt().After(current.CreatedAt())
	}
	return candidate.ID() > current.ID()
}
