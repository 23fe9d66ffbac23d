package ports

import (
	"context"
	"time"

	"varto/internal/core/domain/model/kernel"
)

// OrderStatusChangedEvent is emitted after a committed order status change.
type OrderStatusChangedEvent struct {
	OrderID    kernel.UUID
	VendorID   kernel.UUID
	CourierID  *kernel.UUID
	FromStatus string
	ToStatus   string
	OccurredAt time.Time
}

// EventPublisher pushes domain events to the message broker for downstream
// consumers (analytics, vendor dashboards). Publishing happens after commit;
// a publish failure is logged, not propagated.
type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
