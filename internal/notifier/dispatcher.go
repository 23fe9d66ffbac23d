// Package notifier persists notifications and pushes them to devices.
// Persistence is synchronous and authoritative; push delivery is a detached
// best-effort attempt whose outcome is recorded for the relay job to retry.
package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"varto/internal/core/domain/model/notification"
	"varto/internal/core/ports"
)

const defaultPushTimeout = 5 * time.Second

// Dispatcher fans a notification out to its recipient. It runs in its own
// transactions so a caller's rolled-back business operation never leaks
// notifications, and a notification failure never breaks business flow.
type Dispatcher struct {
	uowFactory  ports.UnitOfWorkFactory
	directory   ports.RecipientDirectory
	sender      ports.PushSender
	logger      *slog.Logger
	pushTimeout time.Duration

	wg sync.WaitGroup
}

// NewDispatcher creates a notification dispatcher.
func NewDispatcher(
	uowFactory ports.UnitOfWorkFactory,
	directory ports.RecipientDirectory,
	sender ports.PushSender,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		uowFactory:  uowFactory,
		directory:   directory,
		sender:      sender,
		logger:      logger.With("component", "notifier"),
		pushTimeout: defaultPushTimeout,
	}
}

// Dispatch persists the notification and schedules the push attempt. It
// never returns an error: dispatch failures are logged and the business
// operation that produced the notification stays committed.
func (d *Dispatcher) Dispatch(ctx context.Context, aggregate *notification.Notification) {
	if err := d.persist(ctx, aggregate, false); err != nil {
		d.logger.Error("persist notification",
			"notification_id", aggregate.ID().String(), "error", err)
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		// detached from the request context so an HTTP response does not
		// cancel the push
		ctx, cancel := context.WithTimeout(context.Background(), d.pushTimeout)
		defer cancel()

		d.attemptPush(ctx, aggregate)

		if err := d.persist(ctx, aggregate, true); err != nil {
			d.logger.Error("record push state",
				"notification_id", aggregate.ID().String(), "error", err)
		}
	}()
}

// RetryPending re-attempts push delivery for notifications still pending or
// failed. The relay job calls this on a schedule. Returns how many rows
// were attempted.
func (d *Dispatcher) RetryPending(ctx context.Context, limit int) (int, error) {
	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.NotificationRepository().GetAllPushPending(ctx, limit)
	if err != nil {
		return 0, err
	}

	for _, n := range pending {
		pushCtx, cancel := context.WithTimeout(ctx, d.pushTimeout)
		d.attemptPush(pushCtx, n)
		cancel()

		if err = uow.NotificationRepository().Update(ctx, n); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return len(pending), nil
}

// Wait blocks until all in-flight push goroutines finished. Used on
// shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// attemptPush resolves the recipient's device token and sends the push,
// recording the outcome on the aggregate without persisting it.
func (d *Dispatcher) attemptPush(ctx context.Context, aggregate *notification.Notification) {
	token, err := d.directory.PushToken(ctx, aggregate.RecipientRole(), aggregate.RecipientID())
	if err != nil {
		d.logger.Warn("resolve push token",
			"notification_id", aggregate.ID().String(), "error", err)
		aggregate.MarkPushFailed()
		return
	}
	if token == "" {
		aggregate.MarkPushSkipped()
		return
	}

	err = d.sender.Send(ctx, ports.PushMessage{
		DeviceToken: token,
		Title:       aggregate.Title(),
		Body:        aggregate.Message(),
		Data:        pushData(aggregate),
	})
	if err != nil {
		d.logger.Warn("send push",
			"notification_id", aggregate.ID().String(), "error", err)
		aggregate.MarkPushFailed()
		return
	}

	aggregate.MarkPushSent()
}

// pushData builds the machine-readable payload the app deep-links from.
func pushData(aggregate *notification.Notification) map[string]string {
	data := map[string]string{
		"notification_id": aggregate.ID().String(),
		"type":            string(aggregate.Type()),
	}
	if aggregate.ReferenceID() != nil {
		data["reference_id"] = aggregate.ReferenceID().String()
	}
	if aggregate.ReferenceType() != nil {
		data["reference_type"] = string(*aggregate.ReferenceType())
	}
	return data
}

// persist stores the notification in its own short transaction. update
// selects between the initial insert and the push-state write-back.
func (d *Dispatcher) persist(ctx context.Context, aggregate *notification.Notification, update bool) error {
	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var err error
	if update {
		err = uow.NotificationRepository().Update(ctx, aggregate)
	} else {
		err = uow.NotificationRepository().Add(ctx, aggregate)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
