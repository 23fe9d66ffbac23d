package commands

import (
	"context"
	"log/slog"
	"time"

	"varto/internal/core/domain/model/order"
	"varto/internal/core/ports"
)

// TransitionOrderCommandHandler applies one order status transition under a
// row lock, then fans out notifications and a broker event. Both fan-outs
// happen strictly after commit and are best effort: the committed transition
// is the source of truth.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NotificationDispatcher
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewTransitionOrderCommandHandler creates a handler for order status
// transitions.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.NotificationDispatcher,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger.With("component", "transition_order_handler"),
	}
}

// Handle processes the transition command and returns the order as
// committed. The order row stays locked from read to commit, so concurrent
// transitions on the same order serialize and the loser revalidates against
// the winner's committed status.
func (h TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
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

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	from := aggregate.Status()
	courierBefore := aggregate.CourierID()

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Actor()); err != nil {
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
		ToStatus:   cmd.Target().String(),
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		h.logger.Error("publish order status change",
			"order_id", aggregate.ID().String(), "error", err)
	}

	for _, n := range orderStatusNotifications(aggregate, courierBefore, cmd.Target()) {
		h.dispatcher.Dispatch(ctx, n)
	}

	return aggregate, nil
}
