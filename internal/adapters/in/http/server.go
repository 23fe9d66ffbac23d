// Package http exposes the delivery platform over a REST API. Handlers
// translate requests into commands and queries; all business rules live in
// the application core.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"varto/internal/core/application/usecases/commands"
	"varto/internal/core/application/usecases/queries"
	"varto/internal/core/domain/model/appointment"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/order"
)

// TokenRegistrar stores device tokens for push delivery.
type TokenRegistrar interface {
	RegisterToken(ctx context.Context, role kernel.Role, recipientID kernel.UUID, token string) error
}

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	TransitionOrder       commands.TransitionOrderCommandHandler
	AssignCourier         commands.AssignCourierCommandHandler
	ReassignCourier       commands.ReassignCourierCommandHandler
	UpdateOrderDetails    commands.UpdateOrderDetailsCommandHandler
	RemoveOrder           commands.RemoveOrderCommandHandler
	CreateAppointment     commands.CreateAppointmentCommandHandler
	TransitionAppointment commands.TransitionAppointmentCommandHandler
	MarkNotificationRead  commands.MarkNotificationReadCommandHandler

	GetActiveOrders  queries.GetActiveOrdersQueryHandler
	GetNotifications queries.GetNotificationsQueryHandler
}

// Server wires HTTP routes to use case handlers.
type Server struct {
	handlers  Handlers
	registrar TokenRegistrar
}

// NewServer creates an HTTP server facade over the given handlers.
func NewServer(handlers Handlers, registrar TokenRegistrar) *Server {
	return &Server{
		handlers:  handlers,
		registrar: registrar,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.POST("/orders/:id/assign", s.AssignCourier)
	api.POST("/orders/:id/reassign", s.ReassignCourier)
	api.PATCH("/orders/:id/details", s.UpdateOrderDetails)
	api.DELETE("/orders/:id", s.RemoveOrder)

	api.POST("/appointments", s.CreateAppointment)
	api.POST("/appointments/:id/transition", s.TransitionAppointment)

	api.GET("/notifications", s.GetNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
	api.PUT("/push-tokens", s.RegisterPushToken)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := parseUUID("vendorId", req.VendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		unitPrice, priceErr := parseMoney("unitPrice", item.UnitPrice)
		if priceErr != nil {
			return respondError(ctx, priceErr)
		}
		items = append(items, commands.ItemInput{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
			Notes:       item.Notes,
		})
	}

	fee, err := parseMoney("deliveryFee", req.DeliveryFee)
	if err != nil {
		return respondError(ctx, err)
	}

	var customerID *kernel.UUID
	if req.CustomerID != nil {
		id, customerErr := parseUUID("customerId", *req.CustomerID)
		if customerErr != nil {
			return respondError(ctx, customerErr)
		}
		customerID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, vendorID, req.Address.toInput(), items, commands.OrderDetailsInput{
		ExternalOrderID: req.ExternalOrderID,
		CustomerID:      customerID,
		CustomerPhone:   req.CustomerPhone,
		DeliveryNotes:   req.DeliveryNotes,
		DeliveryFee:     fee,
		PaymentMethod:   req.PaymentMethod,
		IBANInfo:        req.IBANInfo,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// TransitionOrder handles POST /api/v1/orders/:id/transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req transitionOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// AssignCourier handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req assignCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := parseUUID("courierId", req.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.AssignCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// ReassignCourier handles POST /api/v1/orders/:id/reassign.
func (s *Server) ReassignCourier(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req assignCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := parseUUID("courierId", req.CourierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReassignCourierCommand(orderID, courierID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.ReassignCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// UpdateOrderDetails handles PATCH /api/v1/orders/:id/details.
func (s *Server) UpdateOrderDetails(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateOrderDetailsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	fee, err := parseMoney("deliveryFee", req.DeliveryFee)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(orderID, req.Address.toInput(), req.DeliveryNotes, fee, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateOrderDetails.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// RemoveOrder handles DELETE /api/v1/orders/:id.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RemoveOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	var vendorID, courierID *kernel.UUID

	if raw := ctx.QueryParam("vendor_id"); raw != "" {
		id, err := parseUUID("vendor_id", raw)
		if err != nil {
			return respondError(ctx, err)
		}
		vendorID = &id
	}
	if raw := ctx.QueryParam("courier_id"); raw != "" {
		id, err := parseUUID("courier_id", raw)
		if err != nil {
			return respondError(ctx, err)
		}
		courierID = &id
	}

	query, err := queries.NewGetActiveOrdersQuery(vendorID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]activeOrderResponse, 0, len(orders))
	for _, o := range orders {
		item := activeOrderResponse{
			ID:          o.ID.String(),
			VendorID:    o.VendorID.String(),
			Status:      o.Status,
			Street:      o.Street,
			City:        o.City,
			DeliveryFee: o.DeliveryFee.String(),
			CreatedAt:   o.CreatedAt,
		}
		if o.CourierID != nil {
			raw := o.CourierID.String()
			item.CourierID = &raw
		}
		response = append(response, item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAppointment handles POST /api/v1/appointments.
func (s *Server) CreateAppointment(ctx echo.Context) error {
	var req createAppointmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := parseUUID("vendorId", req.VendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	customerID, err := parseUUID("customerId", req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	appointmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAppointmentCommand(
		appointmentID, vendorID, customerID,
		req.ScheduledAt, req.DurationMinutes, req.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateAppointment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: appointmentID.String()})
}

// TransitionAppointment handles POST /api/v1/appointments/:id/transition.
func (s *Server) TransitionAppointment(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	appointmentID, err := parseUUID("appointmentId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req transitionAppointmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := appointment.StatusFromString(req.Target)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionAppointmentCommand(appointmentID, target, actor, req.RejectionReason)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.TransitionAppointment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newAppointmentResponse(updated))
}

// GetNotifications handles GET /api/v1/notifications. The recipient is the
// calling actor; there is no cross-recipient browsing.
func (s *Server) GetNotifications(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	unreadOnly := ctx.QueryParam("unread_only") == "true"

	query, err := queries.NewGetNotificationsQuery(actor.Role(), actor.ID(), unreadOnly)
	if err != nil {
		return respondError(ctx, err)
	}

	notifications, err := s.handlers.GetNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		item := notificationResponse{
			ID:            n.ID.String(),
			Type:          n.Type,
			Title:         n.Title,
			Message:       n.Message,
			IsRead:        n.IsRead,
			ReferenceType: n.ReferenceType,
			CreatedAt:     n.CreatedAt,
		}
		if n.ReferenceID != nil {
			raw := n.ReferenceID.String()
			item.ReferenceID = &raw
		}
		response = append(response, item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	notificationID, err := parseUUID("notificationId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterPushToken handles PUT /api/v1/push-tokens. The calling actor
// registers their own device token.
func (s *Server) RegisterPushToken(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req registerPushTokenRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if req.Token == "" {
		return badRequest(ctx, "token must not be empty")
	}

	if err := s.registrar.RegisterToken(ctx.Request().Context(), actor.Role(), actor.ID(), req.Token); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
		Kind:    "value_invalid",
	})
}

type addressResponse struct {
	Street     string `json:"street"`
	District   string `json:"district"`
	City       string `json:"city"`
	Directions string `json:"directions,omitempty"`
}

type orderItemResponse struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
	Notes       string `json:"notes,omitempty"`
}

// orderResponse is the full representation mutation endpoints return, so
// clients never need a follow-up read to learn what was committed.
type orderResponse struct {
	ID            string              `json:"id"`
	VendorID      string              `json:"vendor_id"`
	CourierID     *string             `json:"courier_id,omitempty"`
	Status        string              `json:"status"`
	Address       addressResponse     `json:"address"`
	DeliveryNotes string              `json:"delivery_notes,omitempty"`
	DeliveryFee   string              `json:"delivery_fee"`
	Items         []orderItemResponse `json:"items"`
}

func newOrderResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, orderItemResponse{
			ID:          item.ID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			TotalPrice:  item.TotalPrice().String(),
			Notes:       item.Notes(),
		})
	}

	resp := orderResponse{
		ID:       o.ID().String(),
		VendorID: o.VendorID().String(),
		Status:   o.Status().String(),
		Address: addressResponse{
			Street:     o.Address().Street(),
			District:   o.Address().District(),
			City:       o.Address().City(),
			Directions: o.Address().Directions(),
		},
		DeliveryNotes: o.Details().DeliveryNotes,
		DeliveryFee:   o.Details().DeliveryFee.String(),
		Items:         items,
	}
	if o.CourierID() != nil {
		raw := o.CourierID().String()
		resp.CourierID = &raw
	}
	return resp
}

type appointmentResponse struct {
	ID              string    `json:"id"`
	VendorID        string    `json:"vendor_id"`
	CustomerID      string    `json:"customer_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
}

func newAppointmentResponse(a *appointment.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:              a.ID().String(),
		VendorID:        a.VendorID().String(),
		CustomerID:      a.CustomerID().String(),
		ScheduledAt:     a.ScheduledAt(),
		DurationMinutes: a.DurationMinutes(),
		Notes:           a.Notes(),
		Status:          a.Status().String(),
		RejectionReason: a.RejectionReason(),
	}
}

type activeOrderResponse struct {
	ID          string    `json:"id"`
	VendorID    string    `json:"vendor_id"`
	CourierID   *string   `json:"courier_id,omitempty"`
	Status      string    `json:"status"`
	Street      string    `json:"street"`
	City        string    `json:"city"`
	DeliveryFee string    `json:"delivery_fee"`
	CreatedAt   time.Time `json:"created_at"`
}

type notificationResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"is_read"`
	ReferenceID   *string   `json:"reference_id,omitempty"`
	ReferenceType *string   `json:"reference_type,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
