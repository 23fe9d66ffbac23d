package commands

import (
	"context"
	"errors"

	"varto/internal/core/domain/model/order"
	"varto/internal/pkg/errs"
)

// ErrVendorIsNotActive is returned when the addressed vendor exists but has
// been deactivated and cannot take orders.
var ErrVendorIsNotActive = errors.New("vendor is not active")

// CreateOrderCommandHandler handles the business logic for order creation.
// The vendor must exist and be active; the order starts in pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderVendorUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations.
func NewCreateOrderCommandHandler(uowFactory OrderVendorUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	address, items, details, err := cmd.toDomain()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendor, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}
	if !vendor.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("vendorId", ErrVendorIsNotActive)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.VendorID(), address, items, details)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
