package notification

import (
	"fmt"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/trackcode"
)

// Message is a user facing notice addressed to one customer.
type Message struct {
	UserID kernel.UUID
	Text   string
}

// PackageIssued announces a bulk handover of count codes.
func PackageIssued(userID kernel.UUID, count int, pickupPoint string) Message {
	return Message{
		UserID: userID,
		Text:   fmt.Sprintf("📦 %d track code(s) were handed over at pickup point: %s", count, pickupPoint),
	}
}

// CodeHandedOver announces a per-code handover together with its barcode.
func CodeHandedOver(userID kernel.UUID, code, pickupPoint, barcode string) Message {
	return Message{
		UserID: userID,
		Text:   fmt.Sprintf("📦 Track code %s was handed over at pickup point: %s. Handover barcode: %s", code, pickupPoint, barcode),
	}
}

// StatusChanged tells the owner about an operator update.
func StatusChanged(userID kernel.UUID, code string, status trackcode.Status) Message {
	return Message{
		UserID: userID,
		Text:   fmt.Sprintf("Track code %s: %s", code, status.Description()),
	}
}

// ReceiptIssued tells the owner a new receipt is waiting for payment.
func ReceiptIssued(userID kernel.UUID, receiptID int64, totalPrice int64, paymentLink string) Message {
	text := fmt.Sprintf("🧾 Receipt #%d for %d is ready", receiptID, totalPrice)
	if paymentLink != "" {
		text += ": " + paymentLink
	}
	return Message{UserID: userID, Text: text}
}
