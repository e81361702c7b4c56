package queries

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignedOrdersQueryHandler retrieves the active orders carried by a
// partner. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for the assigned orders query.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the partner's active orders, oldest
// assignment first.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]GetAssignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAssignedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			zone_code,
			total_amount,
			delivery_fee,
			partner_earning,
			payment_method,
			payment_status,
			assigned_at
		FROM orders
		WHERE assigned_partner_id = ? AND status IN (?, ?, ?)
		ORDER BY assigned_at
	`, query.PartnerID().Bytes(),
		int(order.Assigned), int(order.PickedUp), int(order.OutForDelivery)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAssignedOrdersQueryResponse
		var id uuid.UUID
		var status int

		if err = rows.Scan(
			&id,
			&status,
			&resp.ZoneCode,
			&resp.TotalAmount,
			&resp.DeliveryFee,
			&resp.PartnerEarning,
			&resp.PaymentMethod,
			&resp.PaymentStatus,
			&resp.AssignedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = orderID
		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
