package queries

import (
	"errors"
	"time"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves one recipient's notifications, optionally
// narrowed to unread ones.
type GetNotificationsQuery struct { //nolint:recvcheck //using for validation
	recipientRole kernel.Role
	recipientID   kernel.UUID
	unreadOnly    bool

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for a recipient's notifications.
func NewGetNotificationsQuery(
	recipientRole kernel.Role,
	recipientID kernel.UUID,
	unreadOnly bool,
) (GetNotificationsQuery, error) {
	q := GetNotificationsQuery{
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}

	if err := recipientRole.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}
	if err := recipientID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	q.recipientRole = recipientRole
	q.recipientID = recipientID
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// RecipientRole returns the recipient's role.
func (q GetNotificationsQuery) RecipientRole() kernel.Role {
	return q.recipientRole
}

// RecipientID returns the recipient's identifier.
func (q GetNotificationsQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

// UnreadOnly reports whether read notifications are filtered out.
func (q GetNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// GetNotificationsQueryResponse is one notification row for the recipient's
// inbox.
type GetNotificationsQueryResponse struct {
	ID            kernel.UUID
	Type          string
	Title         string
	Message       string
	IsRead        bool
	ReferenceID   *kernel.UUID
	ReferenceType *string
	CreatedAt     time.Time
}
