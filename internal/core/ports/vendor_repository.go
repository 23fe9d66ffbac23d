package ports

import (
	"context"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/vendors"
)

// VendorRepository defines the persistence contract for vendor aggregates.
type VendorRepository interface {
	// Add persists a new vendor aggregate.
	Add(ctx context.Context, aggregate *vendors.Vendor) error

	// Update persists changes to an existing vendor aggregate.
	Update(ctx context.Context, aggregate *vendors.Vendor) error

	// Get retrieves a vendor aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vendors.Vendor, error)
}
