package services

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/partner"
)

// Assignment precondition errors, checked in this order and short-circuiting
// on the first failure. They are distinguishable with errors.Is so callers
// can map each to its own user-facing message.
var (
	// ErrOrderNotAvailable is returned when the order is not in Placed status.
	ErrOrderNotAvailable = errors.New("order is not available for assignment")

	// ErrPartnerNotEligible is returned when the partner is unverified or inactive.
	ErrPartnerNotEligible = errors.New("partner is not eligible for assignment")

	// ErrZoneMismatch is returned when the partner does not operate in the order's zone.
	ErrZoneMismatch = errors.New("partner does not operate in the order's zone")

	// ErrCapacityExceeded is returned when the partner already carries the
	// maximum number of active orders.
	ErrCapacityExceeded = errors.New("partner has reached the active order capacity")
)

// OrderDispatcher is the domain service that validates and commits the match
// between an order and a delivery partner.
//
// Preconditions enforced, in order:
//  1. The order is in Placed status
//  2. The partner is verified and active
//  3. The partner's zone equals the order's zone
//  4. The partner's active order count is below partner.MaxActiveOrders
//
// On success the dispatcher computes the delivery fee and partner earning
// from the order amount and binds the partner on the order aggregate. The
// active order count is supplied by the caller, derived from the order store
// inside the same transaction that persists the assignment, so the capacity
// cap holds under concurrent requests together with the store's
// check-and-transition atomicity.
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch validates the assignment preconditions and, if they all hold,
// assigns the order to the partner with the computed fee and earning.
//
// A precondition failure returns the corresponding typed error and leaves the
// order unmodified.
func (d OrderDispatcher) Dispatch(
	o *order.Order,
	p *partner.Partner,
	activeOrderCount int,
	now time.Time,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if o.Status() != order.Placed {
		return ErrOrderNotAvailable
	}
	if !p.CanAcceptOrders() {
		return ErrPartnerNotEligible
	}
	if !p.ZoneCode().IsEqual(o.ZoneCode()) {
		return ErrZoneMismatch
	}
	if activeOrderCount >= partner.MaxActiveOrders {
		return ErrCapacityExceeded
	}

	fee := DeliveryFee(o.TotalAmount())
	earning := PartnerEarning(fee)

	return o.Assign(p.ID(), fee, earning, now)
}
