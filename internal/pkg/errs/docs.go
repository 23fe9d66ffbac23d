// Package errs provides standardized error types for the Varto delivery
// platform. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// Two groups of errors live here:
//
// Value errors, produced during validation:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: a referenced object does not exist or is soft-deleted
//
// Domain errors, produced by the order and appointment lifecycles:
//   - InvalidTransitionError: requested status not reachable from the current one
//   - PermissionDeniedError: actor role or identity not authorized
//   - CourierBusyError: courier exclusivity violation during assignment
//   - ConflictError: a concurrent update won the race for the same row
//
// Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrInvalidTransition), a struct carrying the details, constructor
// functions, an Error() method, and an Unwrap() method returning the sentinel
// so callers can classify with errors.Is.
package errs
