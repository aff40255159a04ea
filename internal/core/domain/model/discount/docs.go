// Package discount models customer discounts applied per kilogram of billed
// weight. Discounts never stack: the resolver in the services package picks
// at most one per receipt.
package discount
