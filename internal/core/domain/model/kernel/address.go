package kernel

import (
	"varto/internal/pkg/errs"
)

// Address is a value object describing a delivery destination.
// Street and city are mandatory; district and directions are optional
// free-form hints for the courier.
type Address struct {
	street     string
	district   string
	city       string
	directions string
}

// NewAddress creates a validated delivery address.
func NewAddress(street, district, city, directions string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		street:     street,
		district:   district,
		city:       city,
		directions: directions,
	}, nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// District returns the optional district name.
func (a Address) District() string {
	return a.district
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// Directions returns free-form courier directions, if any.
func (a Address) Directions() string {
	return a.directions
}

// Validate checks that the mandatory parts of the address are present.
// The zero value of Address is invalid.
func (a Address) Validate() error {
	if a.street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	if a.city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	return nil
}

// IsEqual reports whether two addresses are identical field by field.
func (a Address) IsEqual(other Address) bool {
	return a == other
}
