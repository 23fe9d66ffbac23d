package order

import (
	"fmt"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine whose edges are gated by actor role:
// vendors drive the preparation stages, couriers drive the delivery stages,
// and cancellation stays open to vendor, customer, and admin until a
// terminal status is reached.
//
//	pending ──> confirmed ──> preparing ──> ready ──> assigned ──> accepted ──> delivering ──> delivered
//	   │            │             │           │           │            │             │
//	   └────────────┴─────────────┴───────────┴───────────┴────────────┴─────────────┴──> cancelled
//
// delivered and cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every freshly submitted order.
	Pending

	// Confirmed means the vendor accepted the order.
	Confirmed

	// Preparing means the vendor is preparing the order.
	Preparing

	// Ready means the order is packed and waiting for a courier.
	Ready

	// Assigned means a courier has been linked to the order.
	Assigned

	// Accepted means the assigned courier acknowledged the delivery.
	Accepted

	// Delivering means the courier is on the way to the customer.
	Delivering

	// Delivered is the terminal success status.
	Delivered

	// Cancelled is the terminal abort status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Preparing:  "preparing",
		Ready:      "ready",
		Assigned:   "assigned",
		Accepted:   "accepted",
		Delivering: "delivering",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Confirmed:  "confirmed",
		Preparing:  "preparing",
		Ready:      "ready",
		Assigned:   "assigned",
		Accepted:   "accepted",
		Delivering: "delivering",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// transition is a directed edge of the order state machine.
type transition struct {
	from Status
	to   Status
}

// transitionRoles is the complete adjacency table of the order state
// machine: every allowed edge appears exactly once, together with the roles
// that may trigger it. A (from, to) pair absent from this table is an
// invalid transition for every role.
var transitionRoles = map[transition][]kernel.Role{
	{Pending, Confirmed}:    {kernel.RoleVendor, kernel.RoleAdmin},
	{Pending, Cancelled}:    {kernel.RoleVendor, kernel.RoleCustomer, kernel.RoleAdmin},
	{Confirmed, Preparing}:  {kernel.RoleVendor},
	{Confirmed, Cancelled}:  {kernel.RoleVendor, kernel.RoleCustomer, kernel.RoleAdmin},
	{Preparing, Ready}:      {kernel.RoleVendor},
	{Preparing, Cancelled}:  {kernel.RoleVendor, kernel.RoleCustomer, kernel.RoleAdmin},
	{Ready, Assigned}:       {kernel.RoleVendor, kernel.RoleAdmin},
	{Ready, Cancelled}:      {kernel.RoleVendor, kernel.RoleCustomer, kernel.RoleAdmin},
	{Assigned, Accepted}:    {kernel.RoleCourier},
	{Assigned, Cancelled}:   {kernel.RoleVendor, kernel.RoleCustomer, kernel.RoleAdmin, kernel.RoleCourier},
	{Accepted, Delivering}:  {kernel.RoleCourier},
	{Accepted, Cancelled}:   {kernel.RoleVendor, kernel.RoleCustomer, kernel.RoleAdmin},
	{Delivering, Delivered}: {kernel.RoleCourier},
	{Delivering, Cancelled}: {kernel.RoleVendor, kernel.RoleCustomer, kernel.RoleAdmin},
}

// Validate checks if the Status value is one of the defined order statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "assigned", ...).
// Invalid values render as "unknown". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name back into a Status.
// Returns an error for names outside the closed status set.
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
	return s == Delivered || s == Cancelled
}

// RequiresCourier reports whether an order in this status must carry a
// courier. The courier invariant is: courier set iff RequiresCourier.
// A cancelled order releases its courier, so Cancelled is excluded.
func (s Status) RequiresCourier() bool {
	switch s {
	case Assigned, Accepted, Delivering, Delivered:
		return true
	default:
		return false
	}
}

// CanTransition checks whether the edge from s to target exists and whether
// the given role may trigger it.
//
// Returns:
//   - nil when the transition is allowed for the role
//   - InvalidTransitionError when no such edge exists, for any role
//   - PermissionDeniedError when the edge exists but the role is not gated in
//
// The check is total: every (status, status) pair has a defined outcome.
func (s Status) CanTransition(target Status, role kernel.Role) error {
	roles, ok := transitionRoles[transition{from: s, to: target}]
	if !ok {
		return errs.NewInvalidTransitionError("order", s.String(), target.String())
	}

	for _, r := range roles {
		if r == role {
			return nil
		}
	}
	return errs.NewPermissionDeniedError(role.String(),
		fmt.Sprintf("move the order from %s to %s", s, target))
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment: a courier is attached exactly while the status
// requires one.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier != s.RequiresCourier() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have courier=%t", s, courier))
	}
	return nil
}
