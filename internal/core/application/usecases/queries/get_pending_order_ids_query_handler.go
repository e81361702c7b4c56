package queries

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOrderIDsQueryHandler retrieves the identifiers of placed orders
// across all zones, oldest first.
type GetPendingOrderIDsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrderIDsQueryHandler creates a handler for the pending order IDs query.
func NewGetPendingOrderIDsQueryHandler(db *gorm.DB) GetPendingOrderIDsQueryHandler {
	return GetPendingOrderIDsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetPendingOrderIDsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrderIDsQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM orders
		WHERE status = ?
		ORDER BY placed_at
	`, int(order.Placed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, orderID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
