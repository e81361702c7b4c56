package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an order status transition is
// attempted from a state the transition is not legal in. Use errors.Is to
// distinguish it from other validation failures.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the delivery workflow.
//
// State transitions:
//
//	Placed ──> Assigned ──> PickedUp ──> OutForDelivery ──> Delivered
//	   │           │            │               │
//	   └───────────┴────────────┴───────────────┴──────────> Cancelled
//
// Delivered and Cancelled are terminal; no transition leaves them.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when an order is created.
	// Orders in this status are waiting to be assigned to a delivery partner.
	Placed

	// Assigned indicates the order has been bound to a delivery partner.
	Assigned

	// PickedUp indicates the assigned partner has collected the order.
	PickedUp

	// OutForDelivery indicates the order is on its way to the customer.
	OutForDelivery

	// Delivered indicates the order reached the customer and, for cash on
	// delivery, payment was collected. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Placed:         "PLACED",
		Assigned:       "ASSIGNED",
		PickedUp:       "PICKED_UP",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "PLACED",
		Assigned:       "ASSIGNED",
		PickedUp:       "PICKED_UP",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// StatusFromString parses the persisted or wire representation of a status.
// Returns Unknown and an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%q is not a valid order status", s)
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%d is not a valid order status", s)
	}
	return nil
}

// String returns the persisted name of the status, e.g. "OUT_FOR_DELIVERY".
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether an order in this status counts toward its
// partner's capacity. Active statuses are Assigned, PickedUp and
// OutForDelivery.
func (s Status) IsActive() bool {
	return s == Assigned || s == PickedUp || s == OutForDelivery
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Placed -> Assigned
//
// Returns (0, ErrInvalidTransition) from any other status: an order that is
// already assigned, in flight or terminal cannot be bound to a partner again.
func (s Status) Assign() (Status, error) {
	if s != Placed {
		return 0, invalidTransition(s, Assigned)
	}
	return Assigned, nil
}

// PickUp transitions the status to PickedUp.
//
// Valid transitions:
//   - Assigned -> PickedUp
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return 0, invalidTransition(s, PickedUp)
	}
	return PickedUp, nil
}

// StartDelivery transitions the status to OutForDelivery.
//
// Valid transitions:
//   - PickedUp -> OutForDelivery
func (s Status) StartDelivery() (Status, error) {
	if s != PickedUp {
		return 0, invalidTransition(s, OutForDelivery)
	}
	return OutForDelivery, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered
//
// The payment gate for cash-on-delivery orders is enforced by the Order
// aggregate, not here; this method only validates the state machine edge.
func (s Status) Deliver() (Status, error) {
	if s != OutForDelivery {
		return 0, invalidTransition(s, Delivered)
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - any non-terminal status -> Cancelled
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, invalidTransition(s, Cancelled)
	}
	if s.IsTerminal() {
		return 0, invalidTransition(s, Cancelled)
	}
	return Cancelled, nil
}

func invalidTransition(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
