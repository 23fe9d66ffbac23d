package appointmentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"varto/internal/core/domain/model/appointment"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
)

// mutableColumns are written on every update. Only the lifecycle fields
// change after creation; the slot itself is fixed.
var mutableColumns = []string{"status", "rejection_reason", "notes"}

// GormAppointmentRepository implements AppointmentRepository using GORM.
type GormAppointmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAppointmentRepository creates a new GORM appointment repository.
func NewGormAppointmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAppointmentRepository {
	return &GormAppointmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new appointment to the database.
func (r *GormAppointmentRepository) Add(ctx context.Context, aggregate *appointment.Appointment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing appointment.
func (r *GormAppointmentRepository) Update(ctx context.Context, aggregate *appointment.Appointment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AppointmentDTO{}).
		Where("id = ?", dto.ID).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("appointment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an appointment by ID.
func (r *GormAppointmentRepository) Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an appointment and takes a FOR UPDATE lock on its
// row. Concurrent transitions against the same appointment serialize here.
func (r *GormAppointmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error) {
	return r.get(ctx, id, true)
}

func (r *GormAppointmentRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*appointment.Appointment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto AppointmentDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("appointment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByVendor retrieves the vendor's appointments, soonest first.
func (r *GormAppointmentRepository) GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*appointment.Appointment, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AppointmentDTO
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID.Bytes()).
		Order("scheduled_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	appointments := make([]*appointment.Appointment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}

	return appointments, nil
}
