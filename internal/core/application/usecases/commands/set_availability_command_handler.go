package commands

import (
	"context"

	"grocery/internal/core/domain/model/partner"
	"grocery/internal/core/domain/services"
	"grocery/internal/core/ports"
)

// SetAvailabilityCommandHandler toggles a partner's presence in the
// availability registry.
//
// Going online requires the partner to be verified, active, and below the
// capacity cap; going offline always succeeds. The registry itself stays
// eventually consistent; assignment re-validates everything at commit time.
type SetAvailabilityCommandHandler struct {
	uowFactory UoWFactory
	registry   ports.AvailabilityRegistry
}

// NewSetAvailabilityCommandHandler creates a handler for availability toggles.
func NewSetAvailabilityCommandHandler(uowFactory UoWFactory, registry ports.AvailabilityRegistry) SetAvailabilityCommandHandler {
	return SetAvailabilityCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
	}
}

// Handle processes the availability toggle.
// Returns services.ErrPartnerNotEligible for unverified or inactive partners
// and services.ErrCapacityExceeded for partners already at the cap.
func (h SetAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetAvailabilityCommand) error {
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

	p, err := uow.PartnerRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if !cmd.Available() {
		h.registry.SetAvailable(p.ID(), p.ZoneCode(), false)
		return uow.Commit(ctx)
	}

	if !p.CanAcceptOrders() {
		return services.ErrPartnerNotEligible
	}

	activeCount, err := uow.OrderRepository().CountActiveByPartner(ctx, p.ID())
	if err != nil {
		return err
	}
	if activeCount >= partner.MaxActiveOrders {
		return services.ErrCapacityExceeded
	}

	h.registry.SetAvailable(p.ID(), p.ZoneCode(), true)
	return uow.Commit(ctx)
}
