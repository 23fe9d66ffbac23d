// Package vendorrepo provides data transfer objects and mapping functions
// for vendor persistence.
package vendorrepo

import (
	"time"

	"github.com/google/uuid"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/vendors"
)

// VendorDTO represents the database structure for persisting vendor
// aggregates.
type VendorDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Category  string
	Phone     string
	Iban      string
	IsActive  bool
	PushToken string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for vendor entities.
func (VendorDTO) TableName() string {
	return "vendors"
}

// fromDomain converts a vendor domain aggregate to its database
// representation.
func fromDomain(aggregate *vendors.Vendor) VendorDTO {
	return VendorDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Category:  aggregate.Category(),
		Phone:     aggregate.Phone(),
		Iban:      aggregate.IBAN(),
		IsActive:  aggregate.IsActive(),
		PushToken: aggregate.PushToken(),
	}
}

// toDomain converts a database DTO to a vendor domain aggregate.
func toDomain(dto VendorDTO) (*vendors.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vendors.RestoreVendor(id, dto.Name, dto.Category, dto.Phone, dto.Iban, dto.IsActive, dto.PushToken)
}
