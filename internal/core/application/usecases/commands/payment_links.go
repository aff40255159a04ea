package commands

import "strings"

// DefaultPaymentLinkKey is the entry used for pickup points without their own link.
const DefaultPaymentLinkKey = "default"

// PaymentLinks maps pickup points to the payment page customers are sent to.
type PaymentLinks map[string]string

// For returns the link of the pickup point, or the default one.
func (l PaymentLinks) For(pickupPoint string) string {
	key := strings.ToLower(strings.TrimSpace(pickupPoint))
	for point, link := range l {
		if strings.ToLower(point) == key {
			return link
		}
	}
	return l[DefaultPaymentLinkKey]
}
