// Package queries contains read models for the HTTP surface. Queries go
// straight to the database with raw SQL instead of rehydrating aggregates.
package queries

import (
	"errors"
	"time"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves all orders that are not yet delivered or
// cancelled, optionally filtered to one vendor or one courier.
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	vendorID  *kernel.UUID
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for non-terminal orders. Both
// filters are optional; passing both narrows to their intersection.
func NewGetActiveOrdersQuery(vendorID, courierID *kernel.UUID) (GetActiveOrdersQuery, error) {
	q := GetActiveOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
		q.vendorID = vendorID
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
		q.courierID = courierID
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// VendorID returns the optional vendor filter.
func (q GetActiveOrdersQuery) VendorID() *kernel.UUID {
	return q.vendorID
}

// CourierID returns the optional courier filter.
func (q GetActiveOrdersQuery) CourierID() *kernel.UUID {
	return q.courierID
}

// GetActiveOrdersQueryResponse is one active order row as shown in
// dashboards and courier task lists.
type GetActiveOrdersQueryResponse struct {
	ID          kernel.UUID
	VendorID    kernel.UUID
	CourierID   *kernel.UUID
	Status      string
	Street      string
	City        string
	DeliveryFee kernel.Money
	CreatedAt   time.Time
}
