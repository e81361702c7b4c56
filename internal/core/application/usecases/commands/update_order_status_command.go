package commands

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand drives an order through the partner-owned part of
// the lifecycle: PickedUp, OutForDelivery and Delivered. The acting partner
// must be the one bound to the order.
//
// Assignment and cancellation have their own commands; requesting them here
// is rejected at construction time.
type UpdateOrderStatusCommand struct {
	orderID   kernel.UUID
	partnerID kernel.UUID
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a validated status update command.
// newStatus must be PickedUp, OutForDelivery or Delivered.
func NewUpdateOrderStatusCommand(
	orderID, partnerID kernel.UUID,
	newStatus order.Status,
) (UpdateOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	if err := partnerID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	switch newStatus {
	case order.PickedUp, order.OutForDelivery, order.Delivered:
	default:
		return UpdateOrderStatusCommand{}, errs.NewValueIsInvalidErrorWithCause("newStatus",
			fmt.Errorf("%s is not a partner-driven status", newStatus))
	}

	return UpdateOrderStatusCommand{
		orderID:   orderID,
		partnerID: partnerID,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order to transition.
func (c *UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the acting partner.
func (c *UpdateOrderStatusCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// NewStatus returns the requested target status.
func (c *UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Validate ensures the command was created through the constructor.
func (c *UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}
