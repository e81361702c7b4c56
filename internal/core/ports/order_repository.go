// Package ports defines the contracts between the assignment engine's core
// and its collaborators: persistence, the availability registry, and the
// fire-and-forget notification/inventory clients. These interfaces establish
// dependency inversion between the domain layer and infrastructure.
package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update carries the atomicity guarantee the lifecycle depends on: it is an
// optimistic compare-and-swap on the aggregate version. Of two concurrent
// check-and-transition attempts on the same order exactly one commits; the
// loser receives errs.ErrConcurrencyConflict and must re-read before retrying.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by the
	// aggregate's version. Returns errs.ErrConcurrencyConflict when the stored
	// version no longer matches (the aggregate changed since it was read).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPlacedInZone retrieves the orders awaiting assignment in a zone,
	// oldest placement first.
	GetAllPlacedInZone(ctx context.Context, zone kernel.ZoneCode) ([]*order.Order, error)

	// GetActiveByPartner retrieves the partner's orders in Assigned, PickedUp
	// or OutForDelivery status.
	GetActiveByPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error)

	// CountActiveByPartner returns how many orders currently count toward the
	// partner's capacity. Read inside the assignment transaction so the
	// capacity cap holds under concurrency.
	CountActiveByPartner(ctx context.Context, partnerID kernel.UUID) (int, error)
}
