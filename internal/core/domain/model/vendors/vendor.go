package vendors

import (
	"errors"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
	"varto/internal/pkg/guard"
)

// ErrVendorIsNotConstructed is returned when using an improperly
// initialized Vendor.
var ErrVendorIsNotConstructed = errors.New("Vendor must be created via NewVendor constructor")

// Vendor is a merchant business entity.
type Vendor struct {
	id       kernel.UUID
	name     string
	category string
	phone    string
	iban     string
	isActive bool

	// pushToken is the vendor's registered push-notification token.
	pushToken string

	guard guard.ConstructorGuard
}

// NewVendor creates an active vendor.
func NewVendor(id kernel.UUID, name, category, phone, iban string) (*Vendor, error) {
	v := &Vendor{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
	); err != nil {
		return nil, err
	}

	v.category = category
	v.phone = phone
	v.iban = iban
	return v, nil
}

// RestoreVendor reconstructs a vendor aggregate from persistence.
func RestoreVendor(id kernel.UUID, name, category, phone, iban string, isActive bool, pushToken string) (*Vendor, error) {
	v := &Vendor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
	); err != nil {
		return nil, err
	}

	v.category = category
	v.phone = phone
	v.iban = iban
	v.isActive = isActive
	v.pushToken = pushToken
	return v, nil
}

// Validate ensures the Vendor was created through one of its constructors.
func (v *Vendor) Validate() error {
	if v == nil {
		return ErrVendorIsNotConstructed
	}
	return v.guard.Validate(ErrVendorIsNotConstructed)
}

// ID returns the vendor's unique identifier.
func (v *Vendor) ID() kernel.UUID {
	return v.id
}

// Name returns the business name.
func (v *Vendor) Name() string {
	return v.name
}

// Category returns the vendor's business category.
func (v *Vendor) Category() string {
	return v.category
}

// Phone returns the vendor's contact phone.
func (v *Vendor) Phone() string {
	return v.phone
}

// IBAN returns the payout IBAN shown to customers.
func (v *Vendor) IBAN() string {
	return v.iban
}

// IsActive reports whether the vendor is administratively enabled.
func (v *Vendor) IsActive() bool {
	return v.isActive
}

// PushToken returns the vendor's push token, empty when unregistered.
func (v *Vendor) PushToken() string {
	return v.pushToken
}

// RegisterPushToken stores the vendor's push-notification token.
func (v *Vendor) RegisterPushToken(token string) {
	v.pushToken = token
}

func (v *Vendor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vendor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	v.name = name
	return nil
}
