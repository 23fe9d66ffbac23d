// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"github.com/google/uuid"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/notification"
)

// NotificationDTO represents the database structure for persisting
// notification aggregates. The recipient is addressed by role plus
// identifier; the reference columns are set together or not at all.
type NotificationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type          string    `gorm:"type:varchar(20)"`
	RecipientRole string    `gorm:"type:varchar(20);index:idx_notifications_recipient"`
	RecipientID   uuid.UUID `gorm:"type:uuid;index:idx_notifications_recipient"`
	Title         string
	Message       string
	ReferenceID   *uuid.UUID `gorm:"type:uuid"`
	ReferenceType *string    `gorm:"type:varchar(20)"`
	IsRead        bool
	PushState     string    `gorm:"type:varchar(20);index"`
	CreatedAt     time.Time `gorm:"index"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification domain aggregate to its database
// representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	var referenceID *uuid.UUID
	if id := aggregate.ReferenceID(); id != nil {
		raw := id.Bytes()
		referenceID = &raw
	}

	var referenceType *string
	if t := aggregate.ReferenceType(); t != nil {
		raw := t.String()
		referenceType = &raw
	}

	return NotificationDTO{
		ID:            aggregate.ID().Bytes(),
		Type:          aggregate.Type().String(),
		RecipientRole: string(aggregate.RecipientRole()),
		RecipientID:   aggregate.RecipientID().Bytes(),
		Title:         aggregate.Title(),
		Message:       aggregate.Message(),
		ReferenceID:   referenceID,
		ReferenceType: referenceType,
		IsRead:        aggregate.IsRead(),
		PushState:     aggregate.PushState().String(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification domain aggregate.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	var referenceID *kernel.UUID
	if dto.ReferenceID != nil {
		rID, refErr := kernel.UUIDFromBytes((*dto.ReferenceID)[:])
		if refErr != nil {
			return nil, refErr
		}
		referenceID = &rID
	}

	var referenceType *notification.Type
	if dto.ReferenceType != nil {
		t := notification.Type(*dto.ReferenceType)
		referenceType = &t
	}

	return notification.RestoreNotification(
		id,
		notification.Type(dto.Type),
		kernel.Role(dto.RecipientRole),
		recipientID,
		dto.Title,
		dto.Message,
		referenceID,
		referenceType,
		dto.IsRead,
		notification.PushState(dto.PushState),
		dto.CreatedAt,
	)
}
