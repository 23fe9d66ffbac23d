package order

import (
	"errors"
	"fmt"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
	"varto/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Details carries the optional and payment-related attributes of an order.
// It keeps the constructors readable; validation happens inside them.
type Details struct {
	// ExternalOrderID links to the underlying commerce order, when one exists.
	ExternalOrderID *string
	// CustomerID is nil for guest/phone-only flows.
	CustomerID *kernel.UUID
	// CustomerPhone may be empty when the customer is a registered account.
	CustomerPhone string
	// DeliveryNotes are free-form instructions for the courier.
	DeliveryNotes string
	// DeliveryFee is the fixed-point fee charged for delivery.
	DeliveryFee kernel.Money
	// PaymentMethod is the out-of-band payment channel.
	PaymentMethod PaymentMethod
	// IBANInfo is the payout text shown to the customer for IBAN transfers.
	IBANInfo string
}

// Order is the aggregate root for one delivery transaction. It owns its line
// items, tracks the assigned courier, and is the only place where status
// transitions are applied.
//
// Order maintains these invariants:
//   - vendor is fixed at creation and always present
//   - a courier is attached exactly while the status requires one
//     (assigned, accepted, delivering, delivered)
//   - the status only changes through TransitionTo or Assign, both of which
//     enforce the transition table and actor permissions
//   - delivery details are editable only while the status is non-terminal
type Order struct {
	id        kernel.UUID
	vendorID  kernel.UUID
	courierID *kernel.UUID
	address   kernel.Address
	items     []*Item
	status    Status
	details   Details

	// verbalConfirmation marks payments confirmed by phone call rather
	// than in-app.
	verbalConfirmation bool

	guard guard.ConstructorGuard
}

// NewOrder creates an order in pending status. The vendor, destination
// address, and at least one line item are required; payment method must be
// one of the supported channels.
func NewOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	address kernel.Address,
	items []*Item,
	details Details,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setVendorID(vendorID),
		o.setAddress(address),
		o.setItems(items),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence, including
// its status and courier assignment. The courier/status consistency
// invariant is re-checked so corrupted rows cannot enter the domain.
func RestoreOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	address kernel.Address,
	items []*Item,
	details Details,
	verbalConfirmation bool,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setVendorID(vendorID),
		o.setAddress(address),
		o.setItems(items),
		o.setDetails(details),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}

	o.courierID = courierID
	o.verbalConfirmation = verbalConfirmation
	return o, nil
}

// Validate ensures the Order was created through one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// VendorID returns the owning vendor's identifier.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// CourierID returns the assigned courier's identifier, or nil while no
// courier is attached.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// Address returns the delivery destination.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Details returns the optional and payment-related attributes.
func (o *Order) Details() Details {
	return o.details
}

// VerbalConfirmation reports whether payment was confirmed by phone call.
func (o *Order) VerbalConfirmation() bool {
	return o.verbalConfirmation
}

// TransitionTo moves the order to the target status on behalf of the given
// actor. The transition table decides reachability, the actor's role decides
// permission, and courier-gated edges additionally require the actor to be
// the assigned courier.
//
// Transitioning into Assigned is not possible here: assignment needs a
// courier and goes through Assign, so a bare request yields a validation
// error before any state changes.
//
// Cancellation releases the courier, keeping the invariant that a courier
// is attached exactly while the status requires one.
func (o *Order) TransitionTo(target Status, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if err := o.status.CanTransition(target, actor.Role()); err != nil {
		return err
	}

	if target == Assigned {
		return errs.NewValueIsRequiredError("courierId")
	}

	if actor.Role() == kernel.RoleCourier {
		if o.courierID == nil || !o.courierID.IsEqual(actor.ID()) {
			return errs.NewPermissionDeniedError(actor.Role().String(),
				fmt.Sprintf("act on order %s assigned to another courier", o.id))
		}
	}

	o.status = target
	if target == Cancelled {
		o.courierID = nil
	}
	return nil
}

// Assign links a courier to the order and moves it to Assigned, as one
// atomic aggregate mutation. The actor must be allowed to trigger the
// ready -> assigned edge. Courier availability and exclusivity are checked
// by the assignment service, not here.
func (o *Order) Assign(courierID kernel.UUID, actor kernel.Actor) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	if err := o.status.CanTransition(Assigned, actor.Role()); err != nil {
		return err
	}

	o.courierID = &courierID
	o.status = Assigned
	return nil
}

// Reassign swaps the courier on an order that is already assigned. The
// status does not change and the state machine is not involved; exclusivity
// against the new courier is the assignment service's concern.
func (o *Order) Reassign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.status != Assigned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to reassign a courier", o.status))
	}

	o.courierID = &courierID
	return nil
}

// IsAssignedTo reports whether the given courier currently holds the order.
func (o *Order) IsAssignedTo(courierID kernel.UUID) bool {
	return o.courierID != nil && o.courierID.IsEqual(courierID)
}

// UpdateDeliveryDetails edits address, delivery notes, and fee. These edits
// are allowed at any non-terminal status and never touch the status itself.
func (o *Order) UpdateDeliveryDetails(address kernel.Address, notes string, fee kernel.Money) error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order can no longer be edited", o.status))
	}
	if err := address.Validate(); err != nil {
		return err
	}

	o.address = address
	o.details.DeliveryNotes = notes
	o.details.DeliveryFee = fee
	return nil
}

// ConfirmPaymentVerbally marks the payment as confirmed over the phone.
func (o *Order) ConfirmPaymentVerbally() error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order can no longer be edited", o.status))
	}
	o.verbalConfirmation = true
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	o.vendorID = id
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := details.PaymentMethod.Validate(); err != nil {
		return err
	}
	if details.CustomerID != nil {
		if err := details.CustomerID.Validate(); err != nil {
			return err
		}
	}
	o.details = details
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
