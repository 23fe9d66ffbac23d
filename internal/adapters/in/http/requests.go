package http

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"varto/internal/core/application/usecases/commands"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
)

// Actor identity comes from the authenticating gateway in front of this
// service, which forwards the caller's role and identifier as headers.
const (
	headerActorRole = "X-Actor-Role"
	headerActorID   = "X-Actor-Id"
)

func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	role := kernel.Role(strings.ToLower(ctx.Request().Header.Get(headerActorRole)))

	rawID := ctx.Request().Header.Get(headerActorID)
	if rawID == "" {
		return kernel.Actor{}, errs.NewValueIsRequiredError(headerActorID)
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause(headerActorID, err)
	}

	return kernel.NewActor(role, id)
}

type addressRequest struct {
	Street     string `json:"street"`
	District   string `json:"district"`
	City       string `json:"city"`
	Directions string `json:"directions"`
}

func (r addressRequest) toInput() commands.AddressInput {
	return commands.AddressInput{
		Street:     r.Street,
		District:   r.District,
		City:       r.City,
		Directions: r.Directions,
	}
}

type itemRequest struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Notes       string `json:"notes"`
}

type createOrderRequest struct {
	VendorID        string         `json:"vendor_id"`
	Address         addressRequest `json:"address"`
	Items           []itemRequest  `json:"items"`
	ExternalOrderID *string        `json:"external_order_id"`
	CustomerID      *string        `json:"customer_id"`
	CustomerPhone   string         `json:"customer_phone"`
	DeliveryNotes   string         `json:"delivery_notes"`
	DeliveryFee     string         `json:"delivery_fee"`
	PaymentMethod   string         `json:"payment_method"`
	IBANInfo        string         `json:"iban_info"`
}

type transitionOrderRequest struct {
	Target string `json:"target"`
}

type assignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

type updateOrderDetailsRequest struct {
	Address       addressRequest `json:"address"`
	DeliveryNotes string         `json:"delivery_notes"`
	DeliveryFee   string         `json:"delivery_fee"`
}

type createAppointmentRequest struct {
	VendorID        string    `json:"vendor_id"`
	CustomerID      string    `json:"customer_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes"`
}

type transitionAppointmentRequest struct {
	Target          string `json:"target"`
	RejectionReason string `json:"rejection_reason"`
}

type registerPushTokenRequest struct {
	Token string `json:"token"`
}

type createdResponse struct {
	ID string `json:"id"`
}

func parseUUID(paramName, raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(paramName)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

func parseMoney(paramName, raw string) (kernel.Money, error) {
	if raw == "" {
		return kernel.ZeroMoney(), nil
	}

	money, err := kernel.NewMoneyFromString(raw)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return money, nil
}
