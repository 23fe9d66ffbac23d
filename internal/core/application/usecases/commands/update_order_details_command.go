package commands

import (
	"errors"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
	"varto/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// UpdateOrderDetailsCommand edits the mutable delivery details of an order:
// destination address, delivery notes, and fee. No status change is
// involved. Only vendors and admins may edit.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	address       AddressInput
	deliveryNotes string
	deliveryFee   kernel.Money
	actor         kernel.Actor

	guard guard.ConstructorGuard
}

// NewUpdateOrderDetailsCommand creates a command to edit an order's delivery
// details.
func NewUpdateOrderDetailsCommand(
	orderID kernel.UUID,
	address AddressInput,
	deliveryNotes string,
	deliveryFee kernel.Money,
	actor kernel.Actor,
) (UpdateOrderDetailsCommand, error) {
	cmd := UpdateOrderDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	cmd.address = address
	cmd.deliveryNotes = deliveryNotes
	cmd.deliveryFee = deliveryFee
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the new destination address.
func (c UpdateOrderDetailsCommand) Address() AddressInput {
	return c.address
}

// DeliveryNotes returns the new courier instructions.
func (c UpdateOrderDetailsCommand) DeliveryNotes() string {
	return c.deliveryNotes
}

// DeliveryFee returns the new delivery fee.
func (c UpdateOrderDetailsCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// Actor returns who requested the edit.
func (c UpdateOrderDetailsCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *UpdateOrderDetailsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderDetailsCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != kernel.RoleVendor && actor.Role() != kernel.RoleAdmin {
		return errs.NewPermissionDeniedError(actor.Role().String(), "edit order details")
	}
	c.actor = actor
	return nil
}
