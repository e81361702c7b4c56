package queries

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery lists a partner's active orders: the ones in
// Assigned, PickedUp or OutForDelivery status that count toward capacity.
type GetAssignedOrdersQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates a validated query for a partner.
func NewGetAssignedOrdersQuery(partnerID kernel.UUID) (GetAssignedOrdersQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetAssignedOrdersQuery{}, err
	}

	return GetAssignedOrdersQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// PartnerID returns the partner whose active orders are listed.
func (q *GetAssignedOrdersQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

// Validate ensures the query was created through the constructor.
func (q *GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// GetAssignedOrdersQueryResponse is one active order carried by the partner.
type GetAssignedOrdersQueryResponse struct {
	OrderID        kernel.UUID
	Status         string
	ZoneCode       string
	TotalAmount    float64
	DeliveryFee    float64
	PartnerEarning float64
	PaymentMethod  string
	PaymentStatus  string
	AssignedAt     *time.Time
}
