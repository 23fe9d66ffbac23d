package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
)

// PushTokenDTO stores device tokens for recipients that have no aggregate of
// their own. Couriers and vendors carry their token on their table; customer
// and admin tokens live here.
type PushTokenDTO struct {
	Role      string    `gorm:"type:varchar(20);primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token     string
	UpdatedAt time.Time
}

// TableName specifies the database table name for push token rows.
func (PushTokenDTO) TableName() string {
	return "push_tokens"
}

// GormRecipientDirectory resolves a recipient's device token for push
// delivery. A missing registration resolves to an empty token, not an error;
// the dispatcher treats that as "skip the push".
type GormRecipientDirectory struct {
	db *gorm.DB
}

// NewGormRecipientDirectory creates a directory backed by the given
// connection pool.
func NewGormRecipientDirectory(db *gorm.DB) *GormRecipientDirectory {
	return &GormRecipientDirectory{db: db}
}

// PushToken returns the device token registered for the recipient, or an
// empty string when none exists.
func (d *GormRecipientDirectory) PushToken(ctx context.Context, role kernel.Role, recipientID kernel.UUID) (string, error) {
	if err := role.Validate(); err != nil {
		return "", err
	}
	if err := recipientID.Validate(); err != nil {
		return "", err
	}

	var table string
	switch role {
	case kernel.RoleCourier:
		table = "couriers"
	case kernel.RoleVendor:
		table = "vendors"
	default:
		return d.lookupToken(ctx, role, recipientID)
	}

	var token string
	err := d.db.WithContext(ctx).
		Table(table).
		Select("push_token").
		Where("id = ?", recipientID.Bytes()).
		Scan(&token).Error
	if err != nil {
		return "", err
	}

	return token, nil
}

// RegisterToken stores or replaces the recipient's device token in the same
// place PushToken reads it from: couriers and vendors on their own tables,
// customers and admins in push_tokens.
func (d *GormRecipientDirectory) RegisterToken(ctx context.Context, role kernel.Role, recipientID kernel.UUID, token string) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if err := recipientID.Validate(); err != nil {
		return err
	}

	switch role {
	case kernel.RoleCourier:
		return d.storeAggregateToken(ctx, "couriers", recipientID, token)
	case kernel.RoleVendor:
		return d.storeAggregateToken(ctx, "vendors", recipientID, token)
	}

	dto := PushTokenDTO{
		Role:   string(role),
		UserID: recipientID.Bytes(),
		Token:  token,
	}

	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
		}).
		Create(&dto).Error
}

// storeAggregateToken writes the token onto the recipient's own row. The
// recipient must already exist; token registration never creates couriers or
// vendors.
func (d *GormRecipientDirectory) storeAggregateToken(ctx context.Context, table string, recipientID kernel.UUID, token string) error {
	result := d.db.WithContext(ctx).
		Table(table).
		Where("id = ?", recipientID.Bytes()).
		Updates(map[string]any{
			"push_token": token,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("recipientId", recipientID.String())
	}
	return nil
}

func (d *GormRecipientDirectory) lookupToken(ctx context.Context, role kernel.Role, recipientID kernel.UUID) (string, error) {
	var dto PushTokenDTO
	err := d.db.WithContext(ctx).
		First(&dto, "role = ? AND user_id = ?", string(role), recipientID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	return dto.Token, nil
}
