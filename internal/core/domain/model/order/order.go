package order

import (
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNotAssignedPartner is returned when a lifecycle transition is attempted
	// by a partner other than the one bound to the order.
	ErrNotAssignedPartner = errors.New("actor is not the partner assigned to the order")

	// ErrPaymentRequired is returned when a delivery attempt is made on an order
	// whose payment has not been collected.
	ErrPaymentRequired = errors.New("payment must be collected before the order can be delivered")

	// ErrPaymentNotCOD is returned when payment collection is recorded on an
	// order that is not cash on delivery.
	ErrPaymentNotCOD = errors.New("payment collection applies only to cash on delivery orders")

	// ErrPaymentAlreadyCollected is returned when payment collection is recorded
	// a second time on an order that is already paid.
	ErrPaymentAlreadyCollected = errors.New("payment has already been collected for the order")
)

// Order represents one customer purchase moving through delivery. It is the
// aggregate root that owns the order lifecycle from placement through
// assignment, pickup, delivery or cancellation.
//
// Order maintains these invariants:
//   - Status transitions follow the lifecycle state machine (see Status)
//   - Only the bound partner may drive pickup/delivery transitions
//   - Delivered is reachable only when payment status is PAID
//   - Each lifecycle timestamp is set exactly once, by the transition that reaches it
//   - The partner binding, once set, is never cleared (history survives cancellation)
//
// All fields are private; the aggregate is mutated only through its methods
// and constructed only through NewOrder or RestoreOrder.
type Order struct {
	id       kernel.UUID
	zoneCode kernel.ZoneCode

	totalAmount    kernel.Money
	deliveryFee    kernel.Money
	partnerEarning kernel.Money

	status Status

	paymentMethod       PaymentMethod
	paymentStatus       PaymentStatus
	actualPaymentMethod *ActualPaymentMethod
	paymentTxnRef       string
	paymentNotes        string
	paymentCompletedAt  *time.Time

	placedAt    time.Time
	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	assignedPartnerID *kernel.UUID

	// version supports optimistic concurrency control in persistence.
	version int64

	guard guard.ConstructorGuard
}

// NewOrder creates a freshly placed order.
//
// The order starts in Placed status. Payment status is PAID for online orders
// (upstream payment is confirmed before placement) and PENDING for cash on
// delivery.
//
// Parameters:
//   - id: unique order identifier
//   - zoneCode: service area the order must be delivered in
//   - totalAmount: order value in currency units
//   - paymentMethod: COD or ONLINE
//   - now: placement time
func NewOrder(
	id kernel.UUID,
	zoneCode kernel.ZoneCode,
	totalAmount kernel.Money,
	paymentMethod PaymentMethod,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		validateID(id),
		zoneCode.Validate(),
		validatePaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	paymentStatus := PaymentStatusPending
	if paymentMethod == PaymentMethodOnline {
		paymentStatus = PaymentStatusPaid
	}

	return &Order{
		id:            id,
		zoneCode:      zoneCode,
		totalAmount:   totalAmount,
		status:        Placed,
		paymentMethod: paymentMethod,
		paymentStatus: paymentStatus,
		placedAt:      now,
		version:       1,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrderParams carries the persisted state of an order for restoration.
type RestoreOrderParams struct {
	ID                  kernel.UUID
	ZoneCode            kernel.ZoneCode
	TotalAmount         kernel.Money
	DeliveryFee         kernel.Money
	PartnerEarning      kernel.Money
	Status              Status
	PaymentMethod       PaymentMethod
	PaymentStatus       PaymentStatus
	ActualPaymentMethod *ActualPaymentMethod
	PaymentTxnRef       string
	PaymentNotes        string
	PaymentCompletedAt  *time.Time
	PlacedAt            time.Time
	AssignedAt          *time.Time
	PickedUpAt          *time.Time
	DeliveredAt         *time.Time
	CancelledAt         *time.Time
	AssignedPartnerID   *kernel.UUID
	Version             int64
}

// RestoreOrder reconstructs an order aggregate from persistent storage.
// Unlike NewOrder it accepts the complete persisted state, including lifecycle
// timestamps, partner binding and the optimistic concurrency version.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		validateID(p.ID),
		p.ZoneCode.Validate(),
		p.Status.Validate(),
		validatePaymentMethod(p.PaymentMethod),
		validatePaymentStatus(p.PaymentStatus),
		validateVersion(p.Version),
	); err != nil {
		return nil, err
	}

	if p.Status.IsActive() && p.AssignedPartnerID == nil {
		return nil, errs.NewValueIsRequiredError("assignedPartnerId")
	}

	return &Order{
		id:                  p.ID,
		zoneCode:            p.ZoneCode,
		totalAmount:         p.TotalAmount,
		deliveryFee:         p.DeliveryFee,
		partnerEarning:      p.PartnerEarning,
		status:              p.Status,
		paymentMethod:       p.PaymentMethod,
		paymentStatus:       p.PaymentStatus,
		actualPaymentMethod: p.ActualPaymentMethod,
		paymentTxnRef:       p.PaymentTxnRef,
		paymentNotes:        p.PaymentNotes,
		paymentCompletedAt:  p.PaymentCompletedAt,
		placedAt:            p.PlacedAt,
		assignedAt:          p.AssignedAt,
		pickedUpAt:          p.PickedUpAt,
		deliveredAt:         p.DeliveredAt,
		cancelledAt:         p.CancelledAt,
		assignedPartnerID:   p.AssignedPartnerID,
		version:             p.Version,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from persistence or accepting them across
// component boundaries.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ZoneCode returns the service area the order belongs to.
func (o *Order) ZoneCode() kernel.ZoneCode {
	return o.zoneCode
}

// TotalAmount returns the order value.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DeliveryFee returns the delivery fee computed at assignment time.
// Zero before assignment.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// PartnerEarning returns the partner earning computed at assignment time.
// Zero before assignment.
func (o *Order) PartnerEarning() kernel.Money {
	return o.partnerEarning
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns how the customer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns whether the order has been paid for.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// ActualPaymentMethod returns how a COD payment was collected, or nil if not collected.
func (o *Order) ActualPaymentMethod() *ActualPaymentMethod {
	return o.actualPaymentMethod
}

// PaymentTxnRef returns the optional transaction reference recorded at collection.
func (o *Order) PaymentTxnRef() string {
	return o.paymentTxnRef
}

// PaymentNotes returns the optional notes recorded at collection.
func (o *Order) PaymentNotes() string {
	return o.paymentNotes
}

// PaymentCompletedAt returns when payment was collected, or nil.
func (o *Order) PaymentCompletedAt() *time.Time {
	return o.paymentCompletedAt
}

// PlacedAt returns the placement time.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// AssignedAt returns when the order was assigned, or nil.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// PickedUpAt returns when the order was picked up, or nil.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// AssignedPartner returns the bound partner's ID, or nil if unassigned.
// The binding is never cleared once set, even after cancellation.
func (o *Order) AssignedPartner() *kernel.UUID {
	return o.assignedPartnerID
}

// Version returns the optimistic concurrency version of the aggregate.
func (o *Order) Version() int64 {
	return o.version
}

// IsActive reports whether the order counts toward its partner's capacity.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// Assign binds the order to a delivery partner and records the delivery fee
// and partner earning computed for it.
//
// Only legal from Placed status. The fee and earning are immutable after this
// call. Eligibility of the partner (verification, zone, capacity) is the
// responsibility of the dispatch service; the aggregate only enforces the
// state machine and the binding itself.
func (o *Order) Assign(partnerID kernel.UUID, fee, earning kernel.Money, now time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedPartnerID = &partnerID
	o.deliveryFee = fee
	o.partnerEarning = earning
	o.assignedAt = &now
	return nil
}

// MarkPickedUp records that the bound partner collected the order.
// Only the assigned partner may perform this transition.
func (o *Order) MarkPickedUp(actorID kernel.UUID, now time.Time) error {
	if err := o.ensureAssignedPartner(actorID); err != nil {
		return err
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.pickedUpAt = &now
	return nil
}

// MarkOutForDelivery records that the bound partner is en route to the customer.
// Only the assigned partner may perform this transition.
func (o *Order) MarkOutForDelivery(actorID kernel.UUID, _ time.Time) error {
	if err := o.ensureAssignedPartner(actorID); err != nil {
		return err
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered records successful delivery.
//
// Only the assigned partner may perform this transition, and only once
// payment status is PAID: for cash on delivery this means RecordCODPayment
// must have been called first. A failed guard never mutates the order.
func (o *Order) MarkDelivered(actorID kernel.UUID, now time.Time) error {
	if err := o.ensureAssignedPartner(actorID); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if o.paymentStatus != PaymentStatusPaid {
		return fmt.Errorf("%w: payment status is %s", ErrPaymentRequired, o.paymentStatus)
	}

	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Cancel moves the order to Cancelled from any non-terminal status.
// The partner binding, if any, is preserved for history.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelledAt = &now
	return nil
}

// RecordCODPayment marks a cash-on-delivery order as paid, recording how the
// money was actually collected plus an optional transaction reference and notes.
//
// Legal only for COD orders that are not already paid: re-submission after a
// successful collection is rejected with ErrPaymentAlreadyCollected rather
// than treated as idempotent, so a double report from the field surfaces to
// the caller instead of silently overwriting the first record.
func (o *Order) RecordCODPayment(actual ActualPaymentMethod, txnRef, notes string, now time.Time) error {
	if o.paymentMethod != PaymentMethodCOD {
		return fmt.Errorf("%w: payment method is %s", ErrPaymentNotCOD, o.paymentMethod)
	}
	if o.paymentStatus == PaymentStatusPaid {
		return ErrPaymentAlreadyCollected
	}
	if !actual.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("actualPaymentMethod",
			fmt.Errorf("%q is not a valid collection method", string(actual)))
	}

	o.paymentStatus = PaymentStatusPaid
	o.actualPaymentMethod = &actual
	o.paymentTxnRef = txnRef
	o.paymentNotes = notes
	o.paymentCompletedAt = &now
	return nil
}

func (o *Order) ensureAssignedPartner(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if o.assignedPartnerID == nil || !o.assignedPartnerID.IsEqual(actorID) {
		return ErrNotAssignedPartner
	}
	return nil
}

func validateID(id kernel.UUID) error {
	return id.Validate()
}

func validatePaymentMethod(m PaymentMethod) error {
	if !m.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a valid payment method", string(m)))
	}
	return nil
}

func validatePaymentStatus(s PaymentStatus) error {
	if !s.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%q is not a valid payment status", string(s)))
	}
	return nil
}

func validateVersion(v int64) error {
	if v < 1 {
		return errs.NewVersionIsInvalidError("order version", fmt.Errorf("%d is not a positive version", v))
	}
	return nil
}
