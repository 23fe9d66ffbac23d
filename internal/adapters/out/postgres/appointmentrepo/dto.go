// Package appointmentrepo provides data transfer objects and mapping
// functions for appointment persistence.
package appointmentrepo

import (
	"time"

	"github.com/google/uuid"

	"varto/internal/core/domain/model/appointment"
	"varto/internal/core/domain/model/kernel"
)

// AppointmentDTO represents the database structure for persisting
// appointment aggregates. The status is stored by its wire name.
type AppointmentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID        uuid.UUID `gorm:"type:uuid;index"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	ScheduledAt     time.Time `gorm:"index"`
	DurationMinutes int
	Notes           string
	Status          string `gorm:"type:varchar(20)"`
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for appointment entities.
func (AppointmentDTO) TableName() string {
	return "appointments"
}

// fromDomain converts an appointment domain aggregate to its database
// representation.
func fromDomain(aggregate *appointment.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:              aggregate.ID().Bytes(),
		VendorID:        aggregate.VendorID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		ScheduledAt:     aggregate.ScheduledAt(),
		DurationMinutes: aggregate.DurationMinutes(),
		Notes:           aggregate.Notes(),
		Status:          aggregate.Status().String(),
		RejectionReason: aggregate.RejectionReason(),
	}
}

// toDomain converts a database DTO to an appointment domain aggregate. The
// reason/status consistency check runs again inside RestoreAppointment.
func toDomain(dto AppointmentDTO) (*appointment.Appointment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := appointment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return appointment.RestoreAppointment(
		id, vendorID, customerID,
		dto.ScheduledAt, dto.DurationMinutes, dto.Notes,
		status, dto.RejectionReason,
	)
}
