package commands

import (
	"errors"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand flips a notification's read flag. This is the
// only legal mutation of a notification from the outside.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	actor          kernel.Actor

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark a notification as
// read.
func NewMarkNotificationReadCommand(
	notificationID kernel.UUID,
	actor kernel.Actor,
) (MarkNotificationReadCommand, error) {
	cmd := MarkNotificationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNotificationID(notificationID),
		cmd.setActor(actor),
	); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the notification to mark.
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

// Actor returns who requested the flip.
func (c MarkNotificationReadCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *MarkNotificationReadCommand) setNotificationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.notificationID = id
	return nil
}

func (c *MarkNotificationReadCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
