package ports

import (
	"context"

	"varto/internal/core/domain/model/appointment"
	"varto/internal/core/domain/model/kernel"
)

// AppointmentRepository defines the persistence contract for appointment
// aggregates.
type AppointmentRepository interface {
	// Add persists a new appointment aggregate.
	Add(ctx context.Context, aggregate *appointment.Appointment) error

	// Update persists changes to an existing appointment aggregate.
	Update(ctx context.Context, aggregate *appointment.Appointment) error

	// Get retrieves an appointment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error)

	// GetForUpdate retrieves an appointment and locks its row for the
	// duration of the surrounding transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error)

	// GetAllByVendor retrieves the vendor's appointments, soonest first.
	GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*appointment.Appointment, error)
}
