// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence.
package courierrepo

import (
	"time"

	"github.com/google/uuid"

	"varto/internal/core/domain/model/courier"
	"varto/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for persisting courier
// aggregates.
type CourierDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Phone       string
	Email       string
	VehicleType string `gorm:"type:varchar(20)"`
	IsActive    bool
	IsAvailable bool       `gorm:"index"`
	AccountID   *uuid.UUID `gorm:"type:uuid"`
	PushToken   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database
// representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	var accountID *uuid.UUID
	if id := aggregate.AccountID(); id != nil {
		raw := id.Bytes()
		accountID = &raw
	}

	return CourierDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Phone:       aggregate.Phone(),
		Email:       aggregate.Email(),
		VehicleType: aggregate.VehicleType().String(),
		IsActive:    aggregate.IsActive(),
		IsAvailable: aggregate.IsAvailable(),
		AccountID:   accountID,
		PushToken:   aggregate.PushToken(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var accountID *kernel.UUID
	if dto.AccountID != nil {
		aID, accountErr := kernel.UUIDFromBytes((*dto.AccountID)[:])
		if accountErr != nil {
			return nil, accountErr
		}
		accountID = &aID
	}

	return courier.RestoreCourier(
		id,
		dto.Name, dto.Phone, dto.Email,
		courier.VehicleType(dto.VehicleType),
		dto.IsActive, dto.IsAvailable,
		accountID,
		dto.PushToken,
	)
}
