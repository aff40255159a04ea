package commands

import (
	"context"
	"log/slog"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/ports"
)

// dispatch hands committed notifications to the sink. Delivery problems are
// logged and never reach the caller: the business transaction already happened.
func dispatch(ctx context.Context, sink ports.NotificationSink, logger *slog.Logger, msgs []notification.Message) {
	for _, msg := range msgs {
		if err := sink.Enqueue(ctx, msg.UserID, msg.Text); err != nil {
			logger.WarnContext(ctx, "Notification was not delivered",
				"user_id", msg.UserID.String(), "error", err)
		}
	}
}
