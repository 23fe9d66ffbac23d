package courier

import (
	"errors"
	"fmt"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
	"varto/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a courier without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// VehicleType is the courier's means of transport.
type VehicleType string

const (
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleBicycle    VehicleType = "bicycle"
	VehicleCar        VehicleType = "car"
	VehicleOnFoot     VehicleType = "on_foot"
)

var allowedVehicleTypes = [...]VehicleType{VehicleMotorcycle, VehicleBicycle, VehicleCar, VehicleOnFoot}

// Validate checks the vehicle type against the closed set of allowed values.
func (v VehicleType) Validate() error {
	for _, t := range allowedVehicleTypes {
		if v == t {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("vehicleType",
		fmt.Errorf("%q is not a valid vehicle type", string(v)))
}

// String returns the vehicle type's wire representation.
func (v VehicleType) String() string {
	return string(v)
}

// Courier is a delivery agent. Two independent flags govern whether a
// courier can take new work: is_active (administratively enabled) and
// is_available (currently accepting orders). A courier who goes unavailable
// keeps any delivery already in progress; they only stop receiving new
// assignments.
//
// Exclusivity (at most one active delivery per courier) is not a property
// of this aggregate alone: it spans the courier and the orders table, and is
// enforced by the assignment service under a per-courier lock.
type Courier struct {
	id          kernel.UUID
	name        string
	phone       string
	email       string
	vehicleType VehicleType
	isActive    bool
	isAvailable bool

	// accountID links to the courier's admin account, when one exists.
	accountID *kernel.UUID
	// pushToken is the courier's registered push-notification token.
	pushToken string

	guard guard.ConstructorGuard
}

// NewCourier creates an active, available courier.
func NewCourier(id kernel.UUID, name, phone string, vehicleType VehicleType) (*Courier, error) {
	c := &Courier{
		isActive:    true,
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a courier aggregate from persistence.
func RestoreCourier(
	id kernel.UUID,
	name, phone, email string,
	vehicleType VehicleType,
	isActive, isAvailable bool,
	accountID *kernel.UUID,
	pushToken string,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	if accountID != nil {
		if err := accountID.Validate(); err != nil {
			return nil, err
		}
	}

	c.email = email
	c.isActive = isActive
	c.isAvailable = isAvailable
	c.accountID = accountID
	c.pushToken = pushToken
	return c, nil
}

// Validate ensures the Courier was created through one of its constructors.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's phone number.
func (c *Courier) Phone() string {
	return c.phone
}

// Email returns the courier's optional email address.
func (c *Courier) Email() string {
	return c.email
}

// VehicleType returns the courier's means of transport.
func (c *Courier) VehicleType() VehicleType {
	return c.vehicleType
}

// IsActive reports whether the courier is administratively enabled.
func (c *Courier) IsActive() bool {
	return c.isActive
}

// IsAvailable reports whether the courier is currently accepting work.
func (c *Courier) IsAvailable() bool {
	return c.isAvailable
}

// AccountID returns the linked admin-account id, or nil.
func (c *Courier) AccountID() *kernel.UUID {
	return c.accountID
}

// PushToken returns the courier's push token, empty when unregistered.
func (c *Courier) PushToken() string {
	return c.pushToken
}

// SetAvailability flips whether the courier accepts new assignments.
// Deliveries already in progress are unaffected.
func (c *Courier) SetAvailability(available bool) {
	c.isAvailable = available
}

// Activate administratively enables the courier.
func (c *Courier) Activate() {
	c.isActive = true
}

// Deactivate administratively disables the courier.
func (c *Courier) Deactivate() {
	c.isActive = false
}

// RegisterPushToken stores the courier's push-notification token.
func (c *Courier) RegisterPushToken(token string) {
	c.pushToken = token
}

// CanAcceptAssignment checks whether the courier may be newly linked to an
// order: they must be both administratively active and currently available.
// Unavailable couriers keep orders already in progress but receive no new
// ones.
func (c *Courier) CanAcceptAssignment() error {
	if !c.isActive {
		return errs.NewValueIsInvalidErrorWithCause("courier",
			fmt.Errorf("courier %s is not active", c.id))
	}
	if !c.isAvailable {
		return errs.NewValueIsInvalidErrorWithCause("courier",
			fmt.Errorf("courier %s is not available", c.id))
	}
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Courier) setVehicleType(v VehicleType) error {
	if err := v.Validate(); err != nil {
		return err
	}
	c.vehicleType = v
	return nil
}
