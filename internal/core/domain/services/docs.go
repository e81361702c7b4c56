// Package services contains domain services for the assignment engine:
// stateless business operations that span the Order and Partner aggregates.
//
// The package includes:
//   - OrderDispatcher: validates and commits the order-to-partner match,
//     enforcing zone, verification and capacity invariants
//   - Earnings functions: the pure fee/earning policy applied at assignment
//     time and in earnings aggregation
package services
