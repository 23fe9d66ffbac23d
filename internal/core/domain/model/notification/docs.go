// Package notification contains the Notification aggregate: in-app messages
// addressed to vendors, customers, and couriers, with an independent push
// delivery state.
package notification
