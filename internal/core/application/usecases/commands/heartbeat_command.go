package commands

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/guard"
)

var ErrHeartbeatCommandIsNotConstructed = errors.New(
	"HeartbeatCommand must be created via NewHeartbeatCommand constructor",
)

// HeartbeatCommand refreshes a partner's liveness in the availability
// registry. Heartbeats are the hot path, called every few seconds by every
// online partner's device, so the handler touches no persistence.
type HeartbeatCommand struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHeartbeatCommand creates a validated heartbeat command.
func NewHeartbeatCommand(partnerID kernel.UUID) (HeartbeatCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return HeartbeatCommand{}, err
	}

	return HeartbeatCommand{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// PartnerID returns the heartbeating partner.
func (c *HeartbeatCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Validate ensures the command was created through the constructor.
func (c *HeartbeatCommand) Validate() error {
	return c.guard.Validate(ErrHeartbeatCommandIsNotConstructed)
}

// HeartbeatCommandHandler forwards heartbeats to the availability registry.
// A heartbeat from a partner that is not currently online is a no-op.
type HeartbeatCommandHandler struct {
	registry ports.AvailabilityRegistry
}

// NewHeartbeatCommandHandler creates a handler for partner heartbeats.
func NewHeartbeatCommandHandler(registry ports.AvailabilityRegistry) HeartbeatCommandHandler {
	return HeartbeatCommandHandler{registry: registry}
}

// Handle processes the heartbeat.
func (h HeartbeatCommandHandler) Handle(_ context.Context, cmd HeartbeatCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.registry.Heartbeat(cmd.PartnerID())
	return nil
}
