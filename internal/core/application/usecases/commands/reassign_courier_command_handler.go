package commands

import (
	"context"

	"varto/internal/core/domain/model/order"
	"varto/internal/core/domain/services"
	"varto/internal/core/ports"
)

// ReassignCourierCommandHandler swaps the courier on an assigned order. The
// status does not change, so no broker event goes out; the incoming courier
// gets notified. The same lock ordering as assignment applies.
type ReassignCourierCommandHandler struct {
	uowFactory OrderCourierUoWFactory
	assignment services.CourierAssignment
	dispatcher ports.NotificationDispatcher
}

// NewReassignCourierCommandHandler creates a handler for courier
// reassignment operations.
func NewReassignCourierCommandHandler(
	uowFactory OrderCourierUoWFactory,
	dispatcher ports.NotificationDispatcher,
) ReassignCourierCommandHandler {
	return ReassignCourierCommandHandler{
		uowFactory: uowFactory,
		assignment: services.NewCourierAssignment(),
		dispatcher: dispatcher,
	}
}

// Handle processes the reassignment command and returns the order as
// committed with the new courier attached.
func (h ReassignCourierCommandHandler) Handle(
	ctx context.Context,
	cmd ReassignCourierCommand,
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

	courier, err := courierRepo.GetForUpdate(ctx, cmd.NewCourierID())
	if err != nil {
		return nil, err
	}

	hasActive, err := orderRepo.HasActiveByCourier(ctx, cmd.NewCourierID())
	if err != nil {
		return nil, err
	}

	if err = h.assignment.Reassign(aggregate, courier, hasActive); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, n := range reassignmentNotification(aggregate, cmd.NewCourierID()) {
		h.dispatcher.Dispatch(ctx, n)
	}

	return aggregate, nil
}
