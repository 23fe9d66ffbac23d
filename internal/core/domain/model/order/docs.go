// Package order provides the delivery-order aggregate of the Varto platform.
// It implements the multi-party order lifecycle: vendor-controlled
// preparation stages, courier-controlled delivery stages, and cancellation.
//
// The package includes:
//   - Order: The aggregate root owning identity, parties, delivery details,
//     line items, and the current status
//   - Item: A line item entity exclusively owned by its order
//   - Status: The order state machine with an explicit transition table
//     gating every edge by actor role
//
// Key business rules:
//   - An order holds a courier exactly while its status is one of
//     assigned, accepted, delivering, or delivered
//   - delivered and cancelled are terminal; nothing leaves them
//   - Courier-gated transitions additionally require the acting courier to
//     be the one assigned to the order
//   - Line item totals equal unit price times quantity at creation time
package order
