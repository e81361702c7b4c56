// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read the database directly
// for optimal performance, returning plain read models.
package queries

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery lists the orders awaiting assignment in a zone,
// oldest placement first. Used by operators and by partners browsing open work.
type GetAvailableOrdersQuery struct {
	zoneCode kernel.ZoneCode

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a validated query for a zone.
func NewGetAvailableOrdersQuery(zoneCode kernel.ZoneCode) (GetAvailableOrdersQuery, error) {
	if err := zoneCode.Validate(); err != nil {
		return GetAvailableOrdersQuery{}, err
	}

	return GetAvailableOrdersQuery{
		zoneCode: zoneCode,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ZoneCode returns the zone to list orders for.
func (q *GetAvailableOrdersQuery) ZoneCode() kernel.ZoneCode {
	return q.zoneCode
}

// Validate ensures the query was created through the constructor.
func (q *GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// GetAvailableOrdersQueryResponse is one placed order awaiting assignment.
type GetAvailableOrdersQueryResponse struct {
	OrderID       kernel.UUID
	TotalAmount   float64
	PaymentMethod string
	PlacedAt      time.Time
}
