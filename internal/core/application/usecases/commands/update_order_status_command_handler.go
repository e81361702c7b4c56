package commands

import (
	"context"
	"log/slog"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/partner"
	"grocery/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies partner-driven lifecycle
// transitions to an order.
//
// The transition itself (actor check, state machine edge, payment gate for
// Delivered) is enforced by the Order aggregate; the handler supplies the
// transaction, the compare-and-swap persistence, and the post-commit side
// effects of a completed delivery: re-evaluating the partner's capacity for
// the availability registry and emitting the delivery-completed event.
// Both side effects are best effort and never roll back the transition.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	registry   ports.AvailabilityRegistry
	notifier   ports.NotificationClient
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for partner status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	registry ports.AvailabilityRegistry,
	notifier ports.NotificationClient,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		notifier:   notifier,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle processes the status update command.
// A failed guard (wrong state, wrong actor, payment pending) returns a typed
// error and leaves the order unmodified.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	switch cmd.NewStatus() {
	case order.PickedUp:
		err = o.MarkPickedUp(cmd.PartnerID(), now)
	case order.OutForDelivery:
		err = o.MarkOutForDelivery(cmd.PartnerID(), now)
	case order.Delivered:
		err = o.MarkDelivered(cmd.PartnerID(), now)
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if o.Status() == order.Delivered {
		h.onDelivered(ctx, uow, o)
	}

	return nil
}

// onDelivered re-evaluates the partner's capacity now that this order no
// longer counts toward it, and emits the delivery-completed event.
func (h UpdateOrderStatusCommandHandler) onDelivered(ctx context.Context, uow UoW, o *order.Order) {
	partnerID := *o.AssignedPartner()

	p, err := uow.PartnerRepository().Get(ctx, partnerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to load partner for re-availability",
			"partner_id", partnerID.String(), "error", err)
	} else if p.CanAcceptOrders() {
		activeCount, countErr := uow.OrderRepository().CountActiveByPartner(ctx, partnerID)
		if countErr != nil {
			h.logger.ErrorContext(ctx, "Failed to count partner's active orders",
				"partner_id", partnerID.String(), "error", countErr)
		} else if activeCount < partner.MaxActiveOrders {
			h.registry.SetAvailable(partnerID, p.ZoneCode(), true)
			h.registry.Heartbeat(partnerID)
		}
	}

	if err = h.notifier.NotifyDeliveryCompleted(ctx, o); err != nil {
		h.logger.ErrorContext(ctx, "Failed to notify delivery completion",
			"order_id", o.ID().String(), "error", err)
	}
}
