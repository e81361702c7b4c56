package ports

import (
	"context"

	"grocery/internal/core/domain/model/order"
)

// NotificationClient delivers the "delivery completed" event to the
// notification collaborator. Calls are fire-and-forget: a failure is logged
// by the caller and never blocks or rolls back the order transition.
type NotificationClient interface {
	NotifyDeliveryCompleted(ctx context.Context, o *order.Order) error
}

// InventoryClient delivers the "stock restore" event to the inventory
// collaborator when an order is cancelled. Fire-and-forget, same as
// NotificationClient.
type InventoryClient interface {
	RestockOnCancel(ctx context.Context, o *order.Order) error
}
