// Package partner provides the Partner aggregate representing a delivery
// agent in the grocery delivery system.
//
// Key business rules:
//   - A partner operates in exactly one service zone
//   - Only VERIFIED, active partners may be assigned orders
//   - A partner carries at most MaxActiveOrders orders at a time; the active
//     count is derived from the order store, not cached on the partner
package partner
