package ports

import (
	"context"

	"varto/internal/core/domain/model/notification"
)

// NotificationDispatcher fans a notification out to its recipient: it
// persists the in-app record in its own transaction and attempts push
// delivery without blocking the caller. Dispatch never fails the business
// operation that triggered it.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, aggregate *notification.Notification)
}
