package commands

import (
	"context"
	"fmt"

	"varto/internal/core/domain/model/order"
	"varto/internal/pkg/errs"
)

// RemoveOrderCommandHandler soft-deletes an order. The row survives for
// audit queries but disappears from every repository read. Orders in active
// delivery (assigned, accepted, delivering) are refused.
type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderCommandHandler creates a handler for order removal
// operations.
func NewRemoveOrderCommandHandler(uowFactory OrderUoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch aggregate.Status() {
	case order.Assigned, order.Accepted, order.Delivering:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order is in active delivery and cannot be removed", aggregate.Status()))
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
