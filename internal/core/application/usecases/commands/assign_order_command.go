package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand or NewAutoAssignOrderCommand",
)

// AssignOrderCommand binds a placed order to a delivery partner.
//
// With an explicit partner the command is a manual assignment (an operator
// chose the partner). Without one it is automatic: the handler picks the
// first available partner in the order's zone from the availability registry.
type AssignOrderCommand struct {
	orderID   kernel.UUID
	partnerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a manual assignment command for a specific partner.
func NewAssignOrderCommand(orderID, partnerID kernel.UUID) (AssignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignOrderCommand{}, err
	}
	if err := partnerID.Validate(); err != nil {
		return AssignOrderCommand{}, err
	}

	return AssignOrderCommand{
		orderID:   orderID,
		partnerID: &partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewAutoAssignOrderCommand creates an automatic assignment command:
// the handler selects the partner from the availability registry.
func NewAutoAssignOrderCommand(orderID kernel.UUID) (AssignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignOrderCommand{}, err
	}

	return AssignOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order to assign.
func (c *AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the explicitly chosen partner, or nil for automatic assignment.
func (c *AssignOrderCommand) PartnerID() *kernel.UUID {
	return c.partnerID
}

// IsAutomatic reports whether the handler should pick the partner itself.
func (c *AssignOrderCommand) IsAutomatic() bool {
	return c.partnerID == nil
}

// Validate ensures the command was created through a constructor.
func (c *AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}
