package kernel

import (
	"fmt"

	"varto/internal/pkg/errs"
)

// Role identifies the kind of party acting on, or addressed by, the platform.
// The same set of roles gates status transitions and types notification
// recipients.
type Role string

const (
	RoleVendor   Role = "vendor"
	RoleCustomer Role = "customer"
	RoleCourier  Role = "courier"
	RoleAdmin    Role = "admin"
)

var allowedRoles = [...]Role{RoleVendor, RoleCustomer, RoleCourier, RoleAdmin}

// Validate checks the role against the closed set of allowed values.
func (r Role) Validate() error {
	for _, v := range allowedRoles {
		if r == v {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", string(r)))
}

// String returns the role's wire representation.
func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated party invoking a state change: a role plus the
// identity behind it. Courier-gated transitions compare the actor's ID
// against the order's assigned courier.
type Actor struct {
	role Role
	id   UUID
}

// NewActor creates a validated actor.
func NewActor(role Role, id UUID) (Actor, error) {
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{role: role, id: id}, nil
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// ID returns the actor's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Validate checks that the actor carries a valid role and identity.
// The zero value of Actor is invalid.
func (a Actor) Validate() error {
	if err := a.role.Validate(); err != nil {
		return err
	}
	return a.id.Validate()
}
