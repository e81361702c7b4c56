package commands

import (
	"context"
	"log/slog"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/partner"
	"grocery/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order and runs the cancellation side
// effects: the bound partner, if any, is re-evaluated for the availability
// registry, and a stock-restore event is emitted for the inventory
// collaborator. Side effects are best effort and never roll back the
// cancellation.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	registry   ports.AvailabilityRegistry
	inventory  ports.InventoryClient
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	registry ports.AvailabilityRegistry,
	inventory ports.InventoryClient,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		inventory:  inventory,
		logger:     logger.With("component", "cancel_order_handler"),
	}
}

// Handle processes the cancellation command.
// Cancelling a terminal order returns order.ErrInvalidTransition.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = o.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.onCancelled(ctx, uow, o)
	return nil
}

func (h CancelOrderCommandHandler) onCancelled(ctx context.Context, uow UoW, o *order.Order) {
	if partnerID := o.AssignedPartner(); partnerID != nil {
		p, err := uow.PartnerRepository().Get(ctx, *partnerID)
		if err != nil {
			h.logger.ErrorContext(ctx, "Failed to load partner for re-availability",
				"partner_id", partnerID.String(), "error", err)
		} else if p.CanAcceptOrders() {
			activeCount, countErr := uow.OrderRepository().CountActiveByPartner(ctx, *partnerID)
			if countErr != nil {
				h.logger.ErrorContext(ctx, "Failed to count partner's active orders",
					"partner_id", partnerID.String(), "error", countErr)
			} else if activeCount < partner.MaxActiveOrders {
				h.registry.SetAvailable(*partnerID, p.ZoneCode(), true)
			}
		}
	}

	if err := h.inventory.RestockOnCancel(ctx, o); err != nil {
		h.logger.ErrorContext(ctx, "Failed to emit stock restore event",
			"order_id", o.ID().String(), "error", err)
	}
}
