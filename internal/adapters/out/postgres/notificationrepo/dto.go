// Package notificationrepo stores user facing messages in the notifications
// table, from where the customer channels pick them up.
package notificationrepo

import (
	"time"

	"github.com/google/uuid"
)

// NotificationDTO is the notifications row.
type NotificationDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_unread,priority:1"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null;index:idx_notifications_user_unread,priority:2"`
	CreatedAt time.Time `gorm:"not null"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}
