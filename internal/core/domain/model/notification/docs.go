// Package notification builds the messages customers receive about their
// parcels. Delivery is up to ports.NotificationSink.
package notification
