package ports

import (
	"context"

	"varto/internal/core/domain/model/kernel"
)

// RecipientDirectory resolves a notification recipient to their registered
// device token. An empty token with a nil error means the recipient has no
// device registered and push delivery should be skipped.
type RecipientDirectory interface {
	PushToken(ctx context.Context, role kernel.Role, recipientID kernel.UUID) (string, error)
}
