package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrSetAvailabilityCommandIsNotConstructed = errors.New(
	"SetAvailabilityCommand must be created via NewSetAvailabilityCommand constructor",
)

// SetAvailabilityCommand puts a partner online (willing to accept orders in
// their zone) or takes them offline.
type SetAvailabilityCommand struct {
	partnerID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetAvailabilityCommand creates a validated availability toggle command.
func NewSetAvailabilityCommand(partnerID kernel.UUID, available bool) (SetAvailabilityCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return SetAvailabilityCommand{}, err
	}

	return SetAvailabilityCommand{
		partnerID: partnerID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// PartnerID returns the partner toggling availability.
func (c *SetAvailabilityCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Available reports whether the partner is going online.
func (c *SetAvailabilityCommand) Available() bool {
	return c.available
}

// Validate ensures the command was created through the constructor.
func (c *SetAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAvailabilityCommandIsNotConstructed)
}
