package commands

import (
	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/notification"
	"varto/internal/core/domain/model/order"
)

// orderStatusNotifications builds the fan-out for one committed status
// change. courierBefore is the courier attached before the transition ran,
// because cancellation releases the courier on the aggregate itself.
func orderStatusNotifications(
	o *order.Order,
	courierBefore *kernel.UUID,
	target order.Status,
) []*notification.Notification {
	var out []*notification.Notification

	toCustomer := func(title, message string) {
		if o.Details().CustomerID == nil {
			return
		}
		out = appendOrderNotification(out, o, kernel.RoleCustomer,
			*o.Details().CustomerID, title, message)
	}
	toVendor := func(title, message string) {
		out = appendOrderNotification(out, o, kernel.RoleVendor,
			o.VendorID(), title, message)
	}
	toCourier := func(id *kernel.UUID, title, message string) {
		if id == nil {
			return
		}
		out = appendOrderNotification(out, o, kernel.RoleCourier, *id, title, message)
	}

	switch target {
	case order.Confirmed:
		toCustomer("Order confirmed", "Your order has been confirmed by the vendor.")
	case order.Preparing:
		toCustomer("Order in preparation", "The vendor started preparing your order.")
	case order.Ready:
		toCustomer("Order ready", "Your order is packed and waiting for a courier.")
	case order.Assigned:
		toCourier(o.CourierID(), "New delivery assigned",
			"A delivery has been assigned to you. Accept it to start.")
		toCustomer("Courier assigned", "A courier has been assigned to your order.")
	case order.Accepted:
		toCustomer("Courier on board", "The courier accepted your delivery.")
	case order.Delivering:
		toCustomer("Order on the way", "The courier picked up your order.")
	case order.Delivered:
		toVendor("Order delivered", "The order has been delivered to the customer.")
		toCustomer("Order delivered", "Your order has been delivered. Enjoy!")
	case order.Cancelled:
		toVendor("Order cancelled", "The order has been cancelled.")
		toCustomer("Order cancelled", "Your order has been cancelled.")
		toCourier(courierBefore, "Delivery cancelled",
			"The delivery assigned to you has been cancelled.")
	}

	return out
}

// reassignmentNotification informs the incoming courier about a swap.
func reassignmentNotification(o *order.Order, newCourierID kernel.UUID) []*notification.Notification {
	return appendOrderNotification(nil, o, kernel.RoleCourier, newCourierID,
		"Delivery reassigned to you",
		"A delivery has been reassigned to you. Accept it to start.")
}

func appendOrderNotification(
	dst []*notification.Notification,
	o *order.Order,
	role kernel.Role,
	recipientID kernel.UUID,
	title, message string,
) []*notification.Notification {
	refID := o.ID()
	refType := notification.TypeOrder

	n, err := notification.NewNotification(kernel.NewUUID(), notification.TypeOrder,
		role, recipientID, title, message, &refID, &refType)
	if err != nil {
		return dst
	}
	return append(dst, n)
}
