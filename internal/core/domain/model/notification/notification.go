package notification

import (
	"errors"
	"fmt"
	"time"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
	"varto/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Type classifies what a notification is about.
type Type string

const (
	TypeOrder       Type = "order"
	TypeListing     Type = "listing"
	TypeAppointment Type = "appointment"
	TypeSystem      Type = "system"
)

func getValidTypes() map[Type]bool {
	return map[Type]bool{
		TypeOrder:       true,
		TypeListing:     true,
		TypeAppointment: true,
		TypeSystem:      true,
	}
}

// Validate checks if the Type value is one of the defined notification types.
func (t Type) Validate() error {
	if !getValidTypes()[t] {
		return errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("%q is not a valid notification type", string(t)))
	}
	return nil
}

func (t Type) String() string {
	return string(t)
}

// PushState tracks the out-of-band push delivery for a notification,
// independently of the in-app record. A failed push never invalidates the
// notification itself; the relay job retries pending and failed pushes.
type PushState string

const (
	// PushPending means no delivery attempt has completed yet.
	PushPending PushState = "pending"

	// PushSent means the gateway accepted the message.
	PushSent PushState = "sent"

	// PushFailed means the last attempt errored; eligible for retry.
	PushFailed PushState = "failed"

	// PushSkipped means the recipient has no registered device token.
	PushSkipped PushState = "skipped"
)

func getValidPushStates() map[PushState]bool {
	return map[PushState]bool{
		PushPending: true,
		PushSent:    true,
		PushFailed:  true,
		PushSkipped: true,
	}
}

// Validate checks if the PushState value is one of the defined states.
func (s PushState) Validate() error {
	if !getValidPushStates()[s] {
		return errs.NewValueIsInvalidErrorWithCause("pushState",
			fmt.Errorf("%q is not a valid push state", string(s)))
	}
	return nil
}

func (s PushState) String() string {
	return string(s)
}

// Notification is the aggregate root for a single in-app message addressed
// to one recipient. It is append-mostly: after creation only the read flag
// and the push delivery state change.
type Notification struct {
	id            kernel.UUID
	notifType     Type
	recipientRole kernel.Role
	recipientID   kernel.UUID
	title         string
	message       string
	referenceID   *kernel.UUID
	referenceType *Type
	isRead        bool
	pushState     PushState
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates an unread notification with push delivery pending.
// Reference fields are optional but must come as a pair when present.
func NewNotification(
	id kernel.UUID,
	notifType Type,
	recipientRole kernel.Role,
	recipientID kernel.UUID,
	title string,
	message string,
	referenceID *kernel.UUID,
	referenceType *Type,
) (*Notification, error) {
	n := &Notification{
		pushState: PushPending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setType(notifType),
		n.setRecipient(recipientRole, recipientID),
		n.setTitle(title),
		n.setMessage(message),
		n.setReference(referenceID, referenceType),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a notification aggregate from persistence.
func RestoreNotification(
	id kernel.UUID,
	notifType Type,
	recipientRole kernel.Role,
	recipientID kernel.UUID,
	title string,
	message string,
	referenceID *kernel.UUID,
	referenceType *Type,
	isRead bool,
	pushState PushState,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setType(notifType),
		n.setRecipient(recipientRole, recipientID),
		n.setTitle(title),
		n.setMessage(message),
		n.setReference(referenceID, referenceType),
		n.setPushState(pushState),
	); err != nil {
		return nil, err
	}

	n.isRead = isRead
	n.createdAt = createdAt
	return n, nil
}

// Validate ensures the Notification was created through one of its
// constructors.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// IsEqual compares two notifications by their unique identifiers.
func (n *Notification) IsEqual(other *Notification) bool {
	return other != nil && n.id.IsEqual(other.id)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// Type returns what the notification is about.
func (n *Notification) Type() Type {
	return n.notifType
}

// RecipientRole returns the role the notification is addressed to.
func (n *Notification) RecipientRole() kernel.Role {
	return n.recipientRole
}

// RecipientID returns the addressee's identifier within their role.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// Title returns the short headline.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the notification body.
func (n *Notification) Message() string {
	return n.message
}

// ReferenceID returns the linked entity's identifier, or nil.
func (n *Notification) ReferenceID() *kernel.UUID {
	return n.referenceID
}

// ReferenceType returns the linked entity's kind, or nil.
func (n *Notification) ReferenceType() *Type {
	return n.referenceType
}

// IsRead reports whether the recipient has opened the notification.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// PushState returns the out-of-band push delivery state.
func (n *Notification) PushState() PushState {
	return n.pushState
}

// CreatedAt returns when the notification was produced.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flags the notification as read. Marking an already-read
// notification is a no-op, not an error.
func (n *Notification) MarkRead() {
	n.isRead = true
}

// MarkPushSent records that the gateway accepted the push message.
func (n *Notification) MarkPushSent() {
	n.pushState = PushSent
}

// MarkPushFailed records a failed delivery attempt; the relay job will
// pick it up again.
func (n *Notification) MarkPushFailed() {
	n.pushState = PushFailed
}

// MarkPushSkipped records that the recipient has no device token, so no
// delivery will be attempted.
func (n *Notification) MarkPushSkipped() {
	n.pushState = PushSkipped
}

// NeedsPush reports whether the relay job should attempt delivery.
func (n *Notification) NeedsPush() bool {
	return n.pushState == PushPending || n.pushState == PushFailed
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	n.notifType = t
	return nil
}

func (n *Notification) setRecipient(role kernel.Role, id kernel.UUID) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipientId", err)
	}
	n.recipientRole = role
	n.recipientID = id
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setReference(id *kernel.UUID, t *Type) error {
	if (id == nil) != (t == nil) {
		return errs.NewValueIsInvalidErrorWithCause("reference",
			errors.New("referenceId and referenceType must be set together"))
	}
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
		if err := t.Validate(); err != nil {
			return err
		}
	}
	n.referenceID = id
	n.referenceType = t
	return nil
}

func (n *Notification) setPushState(state PushState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	n.pushState = state
	return nil
}
