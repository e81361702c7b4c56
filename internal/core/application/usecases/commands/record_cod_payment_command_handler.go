package commands

import (
	"context"
	"time"
)

// RecordCODPaymentCommandHandler marks a cash-on-delivery order as paid.
//
// Re-submission after a successful collection is rejected by the aggregate
// with order.ErrPaymentAlreadyCollected rather than treated as idempotent.
type RecordCODPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordCODPaymentCommandHandler creates a handler for payment collection.
func NewRecordCODPaymentCommandHandler(uowFactory OrderUoWFactory) RecordCODPaymentCommandHandler {
	return RecordCODPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment collection command.
func (h RecordCODPaymentCommandHandler) Handle(ctx context.Context, cmd RecordCODPaymentCommand) error {
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

	if err = o.RecordCODPayment(cmd.ActualMethod(), cmd.TxnRef(), cmd.Notes(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
