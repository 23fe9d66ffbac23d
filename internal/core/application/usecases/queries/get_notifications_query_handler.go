package queries

import (
	"context"
	"database/sql"
	"time"

	"varto/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler reads a recipient's inbox straight from the
// notifications table, newest first.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for inbox queries.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			type,
			title,
			message,
			is_read,
			reference_id,
			reference_type,
			created_at
		FROM notifications
		WHERE recipient_role = ?
		  AND recipient_id = ?
	`
	args := []any{query.RecipientRole().String(), query.RecipientID().String()}

	if query.UnreadOnly() {
		stmt += " AND is_read = FALSE"
	}
	stmt += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]GetNotificationsQueryResponse, 0)
	for rows.Next() {
		var (
			id      uuid.UUID
			refID   uuid.NullUUID
			refType sql.NullString
			resp    GetNotificationsQueryResponse
		)

		var createdAt time.Time
		if err = rows.Scan(&id, &resp.Type, &resp.Title, &resp.Message,
			&resp.IsRead, &refID, &refType, &createdAt); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if refID.Valid {
			rid, ridErr := kernel.UUIDFromBytes(refID.UUID[:])
			if ridErr != nil {
				return nil, ridErr
			}
			resp.ReferenceID = &rid
		}
		if refType.Valid {
			resp.ReferenceType = &refType.String
		}

		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
