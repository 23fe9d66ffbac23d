// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and outbound gateways.
package ports

import (
	"context"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate, including its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration of
	// the surrounding transaction. Status transitions read through this
	// method so concurrent requests serialize on the row.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActiveByVendor retrieves the vendor's orders that are not yet
	// delivered or cancelled, oldest first.
	GetAllActiveByVendor(ctx context.Context, vendorID kernel.UUID) ([]*order.Order, error)

	// HasActiveByCourier reports whether the courier currently holds an
	// order in assigned, accepted, or delivering status. Callers enforcing
	// exclusivity must hold the courier's row lock first.
	HasActiveByCourier(ctx context.Context, courierID kernel.UUID) (bool, error)

	// Delete soft-deletes an order. The row survives for audit queries but
	// disappears from every repository read.
	Delete(ctx context.Context, id kernel.UUID) error
}
