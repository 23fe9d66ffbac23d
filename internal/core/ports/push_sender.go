package ports

import (
	"context"
)

// PushMessage is one device push ready for the gateway.
type PushMessage struct {
	// DeviceToken identifies the recipient's device at the gateway.
	DeviceToken string
	// Title is the short headline shown on the device.
	Title string
	// Body is the message text.
	Body string
	// Data carries machine-readable payload the app uses to deep-link,
	// e.g. the referenced entity's id and type.
	Data map[string]string
}

// PushSender delivers push messages to devices through an external gateway.
// Implementations must be time-bounded via the context; delivery is best
// effort and failures are reported, never fatal to the caller's flow.
type PushSender interface {
	Send(ctx context.Context, message PushMessage) error
}
