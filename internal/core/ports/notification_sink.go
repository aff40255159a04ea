package ports

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
)

// NotificationSink delivers user facing messages. Implementations may be
// asynchronous; callers log failures and never roll back because of them.
type NotificationSink interface {
	Enqueue(ctx context.Context, userID kernel.UUID, message string) error
}

// UserDirectory answers questions about customers owned by the identity
// source. The core never creates users.
type UserDirectory interface {
	Exists(ctx context.Context, userID kernel.UUID) (bool, error)
}
