package commands

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrRecordCODPaymentCommandIsNotConstructed = errors.New(
	"RecordCODPaymentCommand must be created via NewRecordCODPaymentCommand constructor",
)

// RecordCODPaymentCommand records that the partner collected payment for a
// cash-on-delivery order at the door. Collection is the gate the Delivered
// transition is checked against.
type RecordCODPaymentCommand struct {
	orderID      kernel.UUID
	actualMethod order.ActualPaymentMethod
	txnRef       string
	notes        string

	guard guard.ConstructorGuard
}

// NewRecordCODPaymentCommand creates a validated payment collection command.
// txnRef and notes are optional and may be empty.
func NewRecordCODPaymentCommand(
	orderID kernel.UUID,
	actualMethod order.ActualPaymentMethod,
	txnRef, notes string,
) (RecordCODPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RecordCODPaymentCommand{}, err
	}
	if !actualMethod.IsValid() {
		return RecordCODPaymentCommand{}, errs.NewValueIsInvalidErrorWithCause("actualMethod",
			fmt.Errorf("%q is not a valid collection method", string(actualMethod)))
	}

	return RecordCODPaymentCommand{
		orderID:      orderID,
		actualMethod: actualMethod,
		txnRef:       txnRef,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order the payment belongs to.
func (c *RecordCODPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActualMethod returns how the payment was collected.
func (c *RecordCODPaymentCommand) ActualMethod() order.ActualPaymentMethod {
	return c.actualMethod
}

// TxnRef returns the optional transaction reference.
func (c *RecordCODPaymentCommand) TxnRef() string {
	return c.txnRef
}

// Notes returns the optional collection notes.
func (c *RecordCODPaymentCommand) Notes() string {
	return c.notes
}

// Validate ensures the command was created through the constructor.
func (c *RecordCODPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordCODPaymentCommandIsNotConstructed)
}
