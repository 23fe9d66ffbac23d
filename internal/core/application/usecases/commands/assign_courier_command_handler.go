package commands

import (
	"context"
	"log/slog"
	"time"

	"varto/internal/core/domain/model/order"
	"varto/internal/core/domain/services"
	"varto/internal/core/ports"
)

// AssignCourierCommandHandler attaches a courier to an order. Locking order
// matters: first the order row, then the courier row, and only then the
// exclusivity count over the courier's active deliveries. Two concurrent
// assignments to the same courier serialize on the courier lock, so exactly
// one sees a clean count.
type AssignCourierCommandHandler struct {
	uowFactory OrderCourierUoWFactory
	assignment services.CourierAssignment
	dispatcher ports.NotificationDispatcher
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAssignCourierCommandHandler creates a handler for courier assignment
// operations.
func NewAssignCourierCommandHandler(
	uowFactory OrderCourierUoWFactory,
	dispatcher ports.NotificationDispatcher,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		assignment: services.NewCourierAssignment(),
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger.With("component", "assign_courier_handler"),
	}
}

// Handle processes the courier assignment command and returns the order as
// committed, courier attached and status set together.
func (h AssignCourierCommandHandler) Handle(
	ctx context.Context,
	cmd AssignCourierCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	from := aggregate.Status()

	courier, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	hasActive, err := orderRepo.HasActiveByCourier(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if err = h.assignment.Assign(aggregate, courier, hasActive, cmd.Actor()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.publisher.PublishOrderStatusChanged(ctx, ports.OrderStatusChangedEvent{
		OrderID:    aggregate.ID(),
		VendorID:   aggregate.VendorID(),
		CourierID:  aggregate.CourierID(),
		FromStatus: from.String(),
		ToStatus:   order.Assigned.String(),
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		h.logger.Error("publish order status change",
			"order_id", aggregate.ID().String(), "error", err)
	}

	for _, n := range orderStatusNotifications(aggregate, nil, order.Assigned) {
		h.dispatcher.Dispatch(ctx, n)
	}

	return aggregate, nil
}
