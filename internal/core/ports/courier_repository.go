package ports

import (
	"context"

	"varto/internal/core/domain/model/courier"
	"varto/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetForUpdate retrieves a courier and locks its row for the duration
	// of the surrounding transaction. Assignment takes this lock before
	// counting the courier's active deliveries, so two concurrent
	// assignments to the same courier cannot both pass the exclusivity
	// check.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAvailable retrieves all active couriers currently accepting
	// assignments.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}
