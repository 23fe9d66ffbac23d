package appointment

import (
	"fmt"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking. The machine is a
// smaller sibling of the order one: the vendor confirms, rejects, or
// completes; either side may cancel until a terminal status is reached.
//
//	pending ──> confirmed ──> completed
//	   │    └─> rejected
//	   └────────┴──> cancelled
//
// completed, rejected, and cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of every freshly requested booking.
	Pending

	// Confirmed means the vendor accepted the booking.
	Confirmed

	// Rejected means the vendor declined the booking; it carries a reason.
	Rejected

	// Cancelled means either side called the booking off.
	Cancelled

	// Completed means the appointment took place.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Rejected:  "rejected",
		Cancelled: "cancelled",
		Completed: "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Rejected:  "rejected",
		Cancelled: "cancelled",
		Completed: "completed",
	}
}

type transition struct {
	from Status
	to   Status
}

// transitionRoles is the complete adjacency table of the appointment state
// machine. A (from, to) pair absent from this table is invalid for every
// role.
var transitionRoles = map[transition][]kernel.Role{
	{Pending, Confirmed}:   {kernel.RoleVendor},
	{Pending, Rejected}:    {kernel.RoleVendor},
	{Pending, Cancelled}:   {kernel.RoleCustomer, kernel.RoleVendor},
	{Confirmed, Completed}: {kernel.RoleVendor},
	{Confirmed, Cancelled}: {kernel.RoleCustomer, kernel.RoleVendor},
}

// Validate checks if the Status value is one of the defined booking statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected || s == Cancelled
}

// CanTransition checks whether the edge from s to target exists and whether
// the given role may trigger it. The check is total over all status pairs.
func (s Status) CanTransition(target Status, role kernel.Role) error {
	roles, ok := transitionRoles[transition{from: s, to: target}]
	if !ok {
		return errs.NewInvalidTransitionError("appointment", s.String(), target.String())
	}

	for _, r := range roles {
		if r == role {
			return nil
		}
	}
	return errs.NewPermissionDeniedError(role.String(),
		fmt.Sprintf("move the appointment from %s to %s", s, target))
}
