// Package http exposes the assignment engine over a JSON HTTP API.
// Handlers bind typed request structs, translate them into commands and
// queries, and map domain error kinds to HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/services"
	"grocery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	createPartnerHandler     commands.CreatePartnerCommandHandler
	assignOrderHandler       commands.AssignOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	recordCODPaymentHandler  commands.RecordCODPaymentCommandHandler
	setAvailabilityHandler   commands.SetAvailabilityCommandHandler
	heartbeatHandler         commands.HeartbeatCommandHandler

	// Query handlers
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler
	assignedOrdersHandler  queries.GetAssignedOrdersQueryHandler
	earningsSummaryHandler queries.GetEarningsSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createPartnerHandler commands.CreatePartnerCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordCODPaymentHandler commands.RecordCODPaymentCommandHandler,
	setAvailabilityHandler commands.SetAvailabilityCommandHandler,
	heartbeatHandler commands.HeartbeatCommandHandler,
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	assignedOrdersHandler queries.GetAssignedOrdersQueryHandler,
	earningsSummaryHandler queries.GetEarningsSummaryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		createPartnerHandler:     createPartnerHandler,
		assignOrderHandler:       assignOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		recordCODPaymentHandler:  recordCODPaymentHandler,
		setAvailabilityHandler:   setAvailabilityHandler,
		heartbeatHandler:         heartbeatHandler,
		availableOrdersHandler:   availableOrdersHandler,
		assignedOrdersHandler:    assignedOrdersHandler,
		earningsSummaryHandler:   earningsSummaryHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/assign", s.AssignOrder)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/payment", s.RecordCODPayment)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.POST("/partners", s.CreatePartner)
	api.POST("/partners/:id/availability", s.SetAvailability)
	api.POST("/partners/:id/heartbeat", s.Heartbeat)
	api.GET("/partners/:id/orders", s.GetAssignedOrders)
	api.GET("/partners/:id/earnings", s.GetEarningsSummary)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zone, err := kernel.NewZoneCode(req.ZoneCode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	amount, err := kernel.NewMoney(req.TotalAmount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, zone, amount, order.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// CreatePartner handles POST /api/v1/partners - onboards a new delivery partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var req CreatePartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zone, err := kernel.NewZoneCode(req.ZoneCode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(partnerID, req.Name, req.Phone, zone)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatePartnerResponse{PartnerID: partnerID.String()})
}

// AssignOrder handles POST /api/v1/orders/:id/assign.
// With a partnerId in the body the assignment is manual; without one the
// engine picks the first eligible partner available in the order's zone.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req AssignOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var cmd commands.AssignOrderCommand
	if req.PartnerID != "" {
		partnerID, idErr := kernel.UUIDFromString(req.PartnerID)
		if idErr != nil {
			return errorResponse(ctx, idErr)
		}
		cmd, err = commands.NewAssignOrderCommand(orderID, partnerID)
	} else {
		cmd, err = commands.NewAutoAssignOrderCommand(orderID)
	}
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
// Drives the partner-side transitions: PICKED_UP, OUT_FOR_DELIVERY, DELIVERED.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, partnerID, newStatus)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RecordCODPayment handles POST /api/v1/orders/:id/payment.
func (s *Server) RecordCODPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req RecordCODPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordCODPaymentCommand(
		orderID, order.ActualPaymentMethod(req.Method), req.TxnRef, req.Notes)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.recordCODPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SetAvailability handles POST /api/v1/partners/:id/availability.
func (s *Server) SetAvailability(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req SetAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetAvailabilityCommand(partnerID, req.Available)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// Heartbeat handles POST /api/v1/partners/:id/heartbeat.
func (s *Server) Heartbeat(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewHeartbeatCommand(partnerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.heartbeatHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetAvailableOrders handles GET /api/v1/orders/available?zone= - lists
// orders awaiting assignment in a zone.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	zone, err := kernel.NewZoneCode(ctx.QueryParam("zone"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetAvailableOrdersQuery(zone)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.availableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]AvailableOrder, len(orders))
	for i, o := range orders {
		response[i] = AvailableOrder{
			OrderID:       o.OrderID.String(),
			TotalAmount:   o.TotalAmount,
			PaymentMethod: o.PaymentMethod,
			PlacedAt:      o.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAssignedOrders handles GET /api/v1/partners/:id/orders - lists a
// partner's active orders.
func (s *Server) GetAssignedOrders(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetAssignedOrdersQuery(partnerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.assignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]AssignedOrder, len(orders))
	for i, o := range orders {
		response[i] = AssignedOrder{
			OrderID:        o.OrderID.String(),
			Status:         o.Status,
			ZoneCode:       o.ZoneCode,
			TotalAmount:    o.TotalAmount,
			DeliveryFee:    o.DeliveryFee,
			PartnerEarning: o.PartnerEarning,
			PaymentMethod:  o.PaymentMethod,
			PaymentStatus:  o.PaymentStatus,
			AssignedAt:     o.AssignedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetEarningsSummary handles GET /api/v1/partners/:id/earnings?from=&to= -
// sums a partner's earnings over delivered orders in the window.
func (s *Server) GetEarningsSummary(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid 'from' timestamp, expected RFC3339")
	}

	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid 'to' timestamp, expected RFC3339")
	}

	query, err := queries.NewGetEarningsSummaryQuery(partnerID, from, to)
	if err != nil {
		return errorResponse(ctx, err)
	}

	summary, err := s.earningsSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, EarningsSummary{
		PartnerID:      summary.PartnerID.String(),
		DeliveredCount: summary.DeliveredCount,
		TotalEarnings:  summary.TotalEarnings,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain error kinds to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrNotAssignedPartner):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, services.ErrOrderNotAvailable),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, order.ErrPaymentAlreadyCollected),
		errors.Is(err, commands.ErrNoPartnersAvailable):
		code = http.StatusConflict
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrPaymentRequired),
		errors.Is(err, order.ErrPaymentNotCOD),
		errors.Is(err, services.ErrPartnerNotEligible),
		errors.Is(err, services.ErrZoneMismatch):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
