// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence; notifications and broker events
// go out only after the transaction committed.
package commands

import (
	"context"

	"varto/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest combination of
// repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a
	// transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// VendorRepoFactory provides access to the vendor repository within a
	// transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// AppointmentRepoFactory provides access to the appointment repository
	// within a transaction.
	AppointmentRepoFactory interface {
		AppointmentRepository() ports.AppointmentRepository
	}

	// NotificationRepoFactory provides access to the notification
	// repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderCourierUoW manages transactions spanning order and courier
	// aggregates, used by assignment and reassignment.
	OrderCourierUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// OrderCourierUoWFactory creates new order/courier unit of work
	// instances.
	OrderCourierUoWFactory interface {
		Create() OrderCourierUoW
	}

	// OrderVendorUoW manages transactions spanning order and vendor
	// aggregates, used by order creation.
	OrderVendorUoW interface {
		TxManager
		OrderRepoFactory
		VendorRepoFactory
	}

	// OrderVendorUoWFactory creates new order/vendor unit of work
	// instances.
	OrderVendorUoWFactory interface {
		Create() OrderVendorUoW
	}

	// AppointmentUoW manages transactions spanning appointment and vendor
	// aggregates.
	AppointmentUoW interface {
		TxManager
		AppointmentRepoFactory
		VendorRepoFactory
	}

	// AppointmentUoWFactory creates new appointment unit of work instances.
	AppointmentUoWFactory interface {
		Create() AppointmentUoW
	}

	// NotificationUoW manages transactions for notification-only
	// operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work
	// instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
