package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order: the entry point of the delivery
// lifecycle. The order starts in PLACED status awaiting partner assignment.
type CreateOrderCommand struct {
	orderID       kernel.UUID
	zoneCode      kernel.ZoneCode
	totalAmount   kernel.Money
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order placement command.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	zoneCode kernel.ZoneCode,
	totalAmount kernel.Money,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := zoneCode.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if !paymentMethod.IsValid() {
		return CreateOrderCommand{}, errs.NewValueIsInvalidError("paymentMethod")
	}

	return CreateOrderCommand{
		orderID:       orderID,
		zoneCode:      zoneCode,
		totalAmount:   totalAmount,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier for the order to create.
func (c *CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ZoneCode returns the delivery zone for the order.
func (c *CreateOrderCommand) ZoneCode() kernel.ZoneCode {
	return c.zoneCode
}

// TotalAmount returns the order value.
func (c *CreateOrderCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

// PaymentMethod returns how the customer chose to pay.
func (c *CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Validate ensures the command was created through the constructor.
func (c *CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
