// Package order provides domain entities and business logic for order
// lifecycle management in the grocery delivery system. It implements the
// Order aggregate root with state transitions, the payment gate for cash on
// delivery, and partner binding.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, money amounts, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentMethod/PaymentStatus/ActualPaymentMethod: payment tracking value types
//
// Key business rules:
//   - Order status follows the workflow: Placed -> Assigned -> PickedUp -> OutForDelivery -> Delivered
//   - Any non-terminal order can be cancelled; Delivered and Cancelled are terminal
//   - Only the bound partner may drive pickup and delivery transitions
//   - Delivered is reachable only when payment status is PAID
//   - Lifecycle timestamps are each set exactly once, by the transition that reaches them
package order
