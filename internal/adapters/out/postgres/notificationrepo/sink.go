package notificationrepo

import (
	"context"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationSink implements ports.NotificationSink by inserting an
// unread notification row. Each call is its own statement, outside of any
// business transaction.
type GormNotificationSink struct {
	db    *gorm.DB
	clock func() time.Time
}

// NewGormNotificationSink stores messages in the notifications table.
func NewGormNotificationSink(db *gorm.DB) *GormNotificationSink {
	return &GormNotificationSink{db: db, clock: time.Now}
}

// Enqueue inserts one undelivered message.
func (s *GormNotificationSink) Enqueue(ctx context.Context, userID kernel.UUID, message string) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	dto := NotificationDTO{
		UserID:    userID.Bytes(),
		Message:   message,
		CreatedAt: s.clock().UTC(),
	}
	return s.db.WithContext(ctx).Omit("ID").Create(&dto).Error
}
