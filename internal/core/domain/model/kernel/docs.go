// Package kernel provides the value objects shared by every cargo aggregate:
// UUID for customer and operator identifiers, Weight for parcel mass in
// kilograms and Rate for per-kilogram tariffs and discounts.
package kernel
