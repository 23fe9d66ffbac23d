package ports

import (
	"context"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notification
// aggregates.
type NotificationRepository interface {
	// Add persists a new notification aggregate.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification aggregate,
	// typically the read flag or the push delivery state.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetAllByRecipient retrieves a recipient's notifications, newest
	// first.
	GetAllByRecipient(ctx context.Context, role kernel.Role, recipientID kernel.UUID) ([]*notification.Notification, error)

	// GetAllPushPending retrieves up to limit notifications whose push
	// delivery is still pending or failed, oldest first. The relay job
	// drains this set.
	GetAllPushPending(ctx context.Context, limit int) ([]*notification.Notification, error)
}
