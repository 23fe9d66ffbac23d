package services

import (
	"errors"

	"varto/internal/core/domain/model/courier"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/order"
	"varto/internal/pkg/errs"
)

var errCourierAlreadyAssigned = errors.New("the courier already holds this order")

// CourierAssignment is a domain service that attaches a courier to an order.
// It bridges the two aggregates: the courier's fitness (active, available,
// not already delivering) and the order's state machine. Reading whether the
// courier currently holds an active delivery requires storage, so the caller
// passes that fact in; the handler obtains it under a row lock on the
// courier to keep the one-active-delivery rule race-free.
type CourierAssignment struct{}

// NewCourierAssignment creates a new CourierAssignment instance.
func NewCourierAssignment() CourierAssignment {
	return CourierAssignment{}
}

// Assign attaches the courier to the order and moves it to assigned status.
// hasActiveDelivery is the precomputed answer to "does this courier already
// hold an order in an active status"; true yields a courier-busy error
// before the order is touched.
func (s CourierAssignment) Assign(
	o *order.Order,
	c *courier.Courier,
	hasActiveDelivery bool,
	actor kernel.Actor,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if err := c.CanAcceptAssignment(); err != nil {
		return err
	}
	if hasActiveDelivery {
		return errs.NewCourierBusyError(c.ID().String())
	}

	return o.Assign(c.ID(), actor)
}

// Reassign swaps the courier on an already-assigned order. The same fitness
// and exclusivity checks apply to the incoming courier; the outgoing one is
// simply released.
func (s CourierAssignment) Reassign(
	o *order.Order,
	c *courier.Courier,
	hasActiveDelivery bool,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if o.IsAssignedTo(c.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("courierId",
			errCourierAlreadyAssigned)
	}

	if err := c.CanAcceptAssignment(); err != nil {
		return err
	}
	if hasActiveDelivery {
		return errs.NewCourierBusyError(c.ID().String())
	}

	return o.Reassign(c.ID())
}
