package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand onboards a new delivery partner. The partner starts in
// PENDING verification and cannot accept orders until verified and activated.
type CreatePartnerCommand struct {
	partnerID kernel.UUID
	name      string
	phone     string
	zoneCode  kernel.ZoneCode

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a validated partner onboarding command.
func NewCreatePartnerCommand(
	partnerID kernel.UUID,
	name, phone string,
	zoneCode kernel.ZoneCode,
) (CreatePartnerCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return CreatePartnerCommand{}, err
	}
	if err := zoneCode.Validate(); err != nil {
		return CreatePartnerCommand{}, err
	}

	return CreatePartnerCommand{
		partnerID: partnerID,
		name:      name,
		phone:     phone,
		zoneCode:  zoneCode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// PartnerID returns the identifier for the partner to create.
func (c *CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's display name.
func (c *CreatePartnerCommand) Name() string {
	return c.name
}

// Phone returns the partner's contact number.
func (c *CreatePartnerCommand) Phone() string {
	return c.phone
}

// ZoneCode returns the partner's operating area.
func (c *CreatePartnerCommand) ZoneCode() kernel.ZoneCode {
	return c.zoneCode
}

// Validate ensures the command was created through the constructor.
func (c *CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}
