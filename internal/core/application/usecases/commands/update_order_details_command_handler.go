package commands

import (
	"context"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/order"
)

// UpdateOrderDetailsCommandHandler edits an order's delivery details under a
// row lock. Terminal orders refuse edits at the aggregate level.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderDetailsCommandHandler creates a handler for order detail
// edits.
func NewUpdateOrderDetailsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detail edit command and returns the order as
// committed.
func (h UpdateOrderDetailsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderDetailsCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(cmd.Address().Street, cmd.Address().District,
		cmd.Address().City, cmd.Address().Directions)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.UpdateDeliveryDetails(address, cmd.DeliveryNotes(), cmd.DeliveryFee()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
