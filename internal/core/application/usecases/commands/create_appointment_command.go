package commands

import (
	"errors"
	"time"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
	"varto/internal/pkg/guard"
)

var ErrCreateAppointmentCommandIsNotConstructed = errors.New(
	"CreateAppointmentCommand must be created via NewCreateAppointmentCommand constructor",
)

// CreateAppointmentCommand requests a pending service booking with a vendor.
type CreateAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID   kernel.UUID
	vendorID        kernel.UUID
	customerID      kernel.UUID
	scheduledAt     time.Time
	durationMinutes int
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateAppointmentCommand creates a command to book a service slot.
// Schedule and duration rules are enforced by the aggregate constructor.
func NewCreateAppointmentCommand(
	appointmentID kernel.UUID,
	vendorID kernel.UUID,
	customerID kernel.UUID,
	scheduledAt time.Time,
	durationMinutes int,
	notes string,
) (CreateAppointmentCommand, error) {
	cmd := CreateAppointmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAppointmentID(appointmentID),
		cmd.setVendorID(vendorID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CreateAppointmentCommand{}, err
	}

	cmd.scheduledAt = scheduledAt
	cmd.durationMinutes = durationMinutes
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAppointmentCommandIsNotConstructed)
}

// AppointmentID returns the identifier the new booking will carry.
func (c CreateAppointmentCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

// VendorID returns the vendor offering the service.
func (c CreateAppointmentCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// CustomerID returns the booking customer.
func (c CreateAppointmentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ScheduledAt returns the requested slot.
func (c CreateAppointmentCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// DurationMinutes returns the requested service length.
func (c CreateAppointmentCommand) DurationMinutes() int {
	return c.durationMinutes
}

// Notes returns the customer's request notes.
func (c CreateAppointmentCommand) Notes() string {
	return c.notes
}

func (c *CreateAppointmentCommand) setAppointmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.appointmentID = id
	return nil
}

func (c *CreateAppointmentCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	c.vendorID = id
	return nil
}

func (c *CreateAppointmentCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}
