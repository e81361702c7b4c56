package http

import "time"

// Error is the JSON body returned on any failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body for POST /api/v1/orders.
type CreateOrderRequest struct {
	ZoneCode      string  `json:"zoneCode"`
	TotalAmount   float64 `json:"totalAmount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// CreateOrderResponse returns the identifier of the placed order.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// CreatePartnerRequest is the body for POST /api/v1/partners.
type CreatePartnerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	ZoneCode string `json:"zoneCode"`
}

// CreatePartnerResponse returns the identifier of the onboarded partner.
type CreatePartnerResponse struct {
	PartnerID string `json:"partnerId"`
}

// AssignOrderRequest is the body for POST /api/v1/orders/:id/assign.
// PartnerID is optional; when empty the engine auto-selects a partner.
type AssignOrderRequest struct {
	PartnerID string `json:"partnerId,omitempty"`
}

// UpdateOrderStatusRequest is the body for POST /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	PartnerID string `json:"partnerId"`
	Status    string `json:"status"`
}

// RecordCODPaymentRequest is the body for POST /api/v1/orders/:id/payment.
type RecordCODPaymentRequest struct {
	Method string `json:"method"`
	TxnRef string `json:"txnRef,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// SetAvailabilityRequest is the body for POST /api/v1/partners/:id/availability.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// AvailableOrder is one order awaiting assignment in a zone.
type AvailableOrder struct {
	OrderID       string    `json:"orderId"`
	TotalAmount   float64   `json:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	PlacedAt      time.Time `json:"placedAt"`
}

// AssignedOrder is one active order carried by a partner.
type AssignedOrder struct {
	OrderID        string     `json:"orderId"`
	Status         string     `json:"status"`
	ZoneCode       string     `json:"zoneCode"`
	TotalAmount    float64    `json:"totalAmount"`
	DeliveryFee    float64    `json:"deliveryFee"`
	PartnerEarning float64    `json:"partnerEarning"`
	PaymentMethod  string     `json:"paymentMethod"`
	PaymentStatus  string     `json:"paymentStatus"`
	AssignedAt     *time.Time `json:"assignedAt,omitempty"`
}

// EarningsSummary aggregates a partner's delivered orders in a window.
type EarningsSummary struct {
	PartnerID      string  `json:"partnerId"`
	DeliveredCount int64   `json:"deliveredCount"`
	TotalEarnings  float64 `json:"totalEarnings"`
}
