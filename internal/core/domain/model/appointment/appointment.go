package appointment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
	"varto/internal/pkg/guard"
)

// ErrAppointmentIsNotConstructed is returned when an Appointment instance was
// not created through NewAppointment or RestoreAppointment.
var ErrAppointmentIsNotConstructed = errors.New("Appointment must be created via NewAppointment constructor")

const (
	minDurationMinutes = 5
	maxDurationMinutes = 8 * 60
)

// Appointment is the aggregate root for a service booking between a customer
// and a vendor. Its lifecycle mirrors the order's in miniature: the vendor
// confirms or rejects, either side cancels, and a rejection always carries a
// reason so the customer learns why.
type Appointment struct {
	id          kernel.UUID
	vendorID    kernel.UUID
	customerID  kernel.UUID
	scheduledAt time.Time
	duration    int
	notes       string
	status      Status

	// rejectionReason is non-nil exactly while the status is Rejected.
	rejectionReason *string

	guard guard.ConstructorGuard
}

// NewAppointment creates a booking in pending status. The slot must lie in
// the future and the duration must be a plausible service length.
func NewAppointment(
	id kernel.UUID,
	vendorID kernel.UUID,
	customerID kernel.UUID,
	scheduledAt time.Time,
	durationMinutes int,
	notes string,
) (*Appointment, error) {
	a := &Appointment{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setVendorID(vendorID),
		a.setCustomerID(customerID),
		a.setScheduledAt(scheduledAt, time.Now()),
		a.setDuration(durationMinutes),
	); err != nil {
		return nil, err
	}

	a.notes = notes
	return a, nil
}

// RestoreAppointment reconstructs a booking aggregate from persistence. The
// scheduled time is accepted as stored, but the reason/status consistency
// invariant is re-checked.
func RestoreAppointment(
	id kernel.UUID,
	vendorID kernel.UUID,
	customerID kernel.UUID,
	scheduledAt time.Time,
	durationMinutes int,
	notes string,
	status Status,
	rejectionReason *string,
) (*Appointment, error) {
	a := &Appointment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setVendorID(vendorID),
		a.setCustomerID(customerID),
		a.setDuration(durationMinutes),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	if scheduledAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("scheduledAt")
	}
	if (status == Rejected) != (rejectionReason != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("rejectionReason",
			fmt.Errorf("a reason must be present exactly when the status is %s", Rejected))
	}

	a.scheduledAt = scheduledAt
	a.notes = notes
	a.rejectionReason = rejectionReason
	return a, nil
}

// Validate ensures the Appointment was created through one of its
// constructors.
func (a *Appointment) Validate() error {
	if a == nil {
		return ErrAppointmentIsNotConstructed
	}
	return a.guard.Validate(ErrAppointmentIsNotConstructed)
}

// IsEqual compares two appointments by their unique identifiers.
func (a *Appointment) IsEqual(other *Appointment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the appointment's unique identifier.
func (a *Appointment) ID() kernel.UUID {
	return a.id
}

// VendorID returns the vendor offering the service.
func (a *Appointment) VendorID() kernel.UUID {
	return a.vendorID
}

// CustomerID returns the customer who booked the slot.
func (a *Appointment) CustomerID() kernel.UUID {
	return a.customerID
}

// ScheduledAt returns the booked start time.
func (a *Appointment) ScheduledAt() time.Time {
	return a.scheduledAt
}

// DurationMinutes returns the service length in minutes.
func (a *Appointment) DurationMinutes() int {
	return a.duration
}

// Notes returns the customer's free-form request notes.
func (a *Appointment) Notes() string {
	return a.notes
}

// Status returns the current lifecycle status.
func (a *Appointment) Status() Status {
	return a.status
}

// RejectionReason returns the vendor's reason, or nil while the booking is
// not rejected.
func (a *Appointment) RejectionReason() *string {
	return a.rejectionReason
}

// TransitionTo moves the booking to the target status on behalf of the given
// actor. Moving into Rejected goes through Reject because it needs a reason,
// so a bare request yields a validation error before any state changes.
func (a *Appointment) TransitionTo(target Status, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if err := a.status.CanTransition(target, actor.Role()); err != nil {
		return err
	}

	if target == Rejected {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	a.status = target
	return nil
}

// Reject declines the booking with a mandatory reason, as one atomic
// aggregate mutation.
func (a *Appointment) Reject(reason string, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	if err := a.status.CanTransition(Rejected, actor.Role()); err != nil {
		return err
	}

	a.status = Rejected
	a.rejectionReason = &reason
	return nil
}

func (a *Appointment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Appointment) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	a.vendorID = id
	return nil
}

func (a *Appointment) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	a.customerID = id
	return nil
}

func (a *Appointment) setScheduledAt(scheduledAt, now time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}
	if !scheduledAt.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("scheduledAt",
			errors.New("the slot must be in the future"))
	}
	a.scheduledAt = scheduledAt
	return nil
}

func (a *Appointment) setDuration(minutes int) error {
	if minutes < minDurationMinutes || minutes > maxDurationMinutes {
		return errs.NewValueIsOutOfRangeError("durationMinutes", minutes,
			minDurationMinutes, maxDurationMinutes)
	}
	a.duration = minutes
	return nil
}

func (a *Appointment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
