// Package receipt models the billing statement that aggregates a customer's
// delivered parcels. A receipt computes its totals once from its items, and
// freezes them when it is paid.
package receipt
