package queries

import (
	"context"

	"grocery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetEarningsSummaryQueryHandler aggregates a partner's delivered orders.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetEarningsSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetEarningsSummaryQueryHandler creates a handler for the earnings summary query.
func NewGetEarningsSummaryQueryHandler(db *gorm.DB) GetEarningsSummaryQueryHandler {
	return GetEarningsSummaryQueryHandler{db: db}
}

// Handle executes the query. A partner with no deliveries in the window
// gets a zero summary, not an error.
func (h GetEarningsSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetEarningsSummaryQuery,
) (GetEarningsSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEarningsSummaryQueryResponse{}, err
	}

	resp := GetEarningsSummaryQueryResponse{PartnerID: query.PartnerID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(partner_earning), 0)
		FROM orders
		WHERE assigned_partner_id = ?
			AND status = ?
			AND delivered_at BETWEEN ? AND ?
	`, query.PartnerID().Bytes(), int(order.Delivered), query.From(), query.To()).Row()

	if err := row.Scan(&resp.DeliveredCount, &resp.TotalEarnings); err != nil {
		return GetEarningsSummaryQueryResponse{}, err
	}

	return resp, nil
}
