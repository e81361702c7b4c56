package commands

import (
	"context"
	"errors"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/partner"
	"grocery/internal/core/domain/services"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

// ErrNoPartnersAvailable is returned by automatic assignment when the
// availability registry has no usable partner for the order's zone.
var ErrNoPartnersAvailable = errors.New("no partners available in the order's zone")

// AssignOrderCommandHandler orchestrates the assignment of orders to delivery
// partners: the core of the assignment engine.
//
// Manual assignments validate the operator's chosen partner; automatic
// assignments consult the availability registry for the order's zone and take
// the first partner that passes the eligibility, zone and capacity checks.
// All persistence runs in a single transaction, and the order update is an
// optimistic compare-and-swap, so of two concurrent assignments of the same
// order exactly one commits.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory, registry)
//	cmd, _ := NewAutoAssignOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPartnersAvailable):
//	    log.Println("Nobody is on shift in this zone")
//	case errors.Is(err, services.ErrOrderNotAvailable):
//	    log.Println("Order already assigned or cancelled")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	registry   ports.AvailabilityRegistry
}

// NewAssignOrderCommandHandler creates a handler for order assignment operations.
func NewAssignOrderCommandHandler(uowFactory UoWFactory, registry ports.AvailabilityRegistry) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
	}
}

// Handle processes the assignment command.
//
// Preconditions are checked in order and short-circuit on the first failure:
// order exists in Placed status, partner exists and is verified and active,
// zones match, partner capacity not exceeded. On success the order carries
// the computed delivery fee and partner earning, and a partner that reached
// the capacity cap is removed from the availability registry.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	if cmd.IsAutomatic() {
		return h.assignAutomatically(ctx, uow, o)
	}

	p, err := uow.PartnerRepository().Get(ctx, *cmd.PartnerID())
	if err != nil {
		return err
	}

	return h.commitAssignment(ctx, uow, o, p)
}

// assignAutomatically walks the zone's availability list in registry order
// (no ranking) and assigns the first partner that passes all preconditions.
// Partners that fail a partner-side check are skipped; registry staleness is
// tolerated because eligibility is re-validated here, at commit time.
func (h AssignOrderCommandHandler) assignAutomatically(ctx context.Context, uow UoW, o *order.Order) error {
	candidates := h.registry.ListAvailable(o.ZoneCode())
	if len(candidates) == 0 {
		return ErrNoPartnersAvailable
	}

	for _, partnerID := range candidates {
		p, err := uow.PartnerRepository().Get(ctx, partnerID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		err = h.commitAssignment(ctx, uow, o, p)
		if isPartnerSideFailure(err) {
			continue
		}
		return err
	}

	return ErrNoPartnersAvailable
}

func (h AssignOrderCommandHandler) commitAssignment(
	ctx context.Context,
	uow UoW,
	o *order.Order,
	p *partner.Partner,
) error {
	activeCount, err := uow.OrderRepository().CountActiveByPartner(ctx, p.ID())
	if err != nil {
		return err
	}

	if err = services.NewOrderDispatcher().Dispatch(o, p, activeCount, time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The new assignment counts toward capacity from now on.
	if activeCount+1 >= partner.MaxActiveOrders {
		h.registry.SetAvailable(p.ID(), p.ZoneCode(), false)
	}

	return nil
}

// isPartnerSideFailure reports whether the error only disqualifies this
// partner, so automatic assignment may try the next candidate. Order-side
// failures and infrastructure errors abort the whole attempt.
func isPartnerSideFailure(err error) bool {
	return errors.Is(err, services.ErrPartnerNotEligible) ||
		errors.Is(err, services.ErrZoneMismatch) ||
		errors.Is(err, services.ErrCapacityExceeded)
}
