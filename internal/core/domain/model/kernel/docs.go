// Package kernel provides core domain primitives and utilities for the grocery
// delivery system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - ZoneCode: A value object for the service-area key used to match orders to delivery partners
//   - Money: A value object for currency amounts (order totals, delivery fees, partner earnings)
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
