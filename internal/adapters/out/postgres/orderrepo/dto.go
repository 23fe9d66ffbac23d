// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored by its wire name so rows stay readable and the enum
// can be reordered without a migration. Removal is a soft delete: the row
// keeps its audit trail but vanishes from every repository read.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VendorID  uuid.UUID  `gorm:"type:uuid;index"`
	CourierID *uuid.UUID `gorm:"type:uuid;index"`
	Status    string     `gorm:"type:varchar(20);index"`

	Street     string
	District   string
	City       string
	Directions string

	ExternalOrderID    *string
	CustomerID         *uuid.UUID `gorm:"type:uuid;index"`
	CustomerPhone      string
	DeliveryNotes      string
	DeliveryFee        decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentMethod      string          `gorm:"type:varchar(20)"`
	IbanInfo           string
	VerbalConfirmation bool

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item. Line items are immutable after
// order creation, so they are only ever inserted alongside their order.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Notes       string
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, including line items and the optional courier assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	details := aggregate.Details()

	var customerID *uuid.UUID
	if details.CustomerID != nil {
		raw := details.CustomerID.Bytes()
		customerID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Decimal(),
			TotalPrice:  item.TotalPrice().Decimal(),
			Notes:       item.Notes(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		VendorID:           aggregate.VendorID().Bytes(),
		CourierID:          courierID,
		Status:             aggregate.Status().String(),
		Street:             aggregate.Address().Street(),
		District:           aggregate.Address().District(),
		City:               aggregate.Address().City(),
		Directions:         aggregate.Address().Directions(),
		ExternalOrderID:    details.ExternalOrderID,
		CustomerID:         customerID,
		CustomerPhone:      details.CustomerPhone,
		DeliveryNotes:      details.DeliveryNotes,
		DeliveryFee:        details.DeliveryFee.Decimal(),
		PaymentMethod:      details.PaymentMethod.String(),
		IbanInfo:           details.IBANInfo,
		VerbalConfirmation: aggregate.VerbalConfirmation(),
		Items:              items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstruction goes through RestoreOrder so the courier/status invariant is
// re-checked on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Street, dto.District, dto.City, dto.Directions)
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		ExternalOrderID: dto.ExternalOrderID,
		CustomerID:      customerID,
		CustomerPhone:   dto.CustomerPhone,
		DeliveryNotes:   dto.DeliveryNotes,
		DeliveryFee:     fee,
		PaymentMethod:   order.PaymentMethod(dto.PaymentMethod),
		IBANInfo:        dto.IbanInfo,
	}

	return order.RestoreOrder(id, vendorID, courierID, status, address, items, details, dto.VerbalConfirmation)
}

func itemsToDomain(dtos []ItemDTO) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		unitPrice, err := kernel.NewMoney(dto.UnitPrice)
		if err != nil {
			return nil, err
		}

		totalPrice, err := kernel.NewMoney(dto.TotalPrice)
		if err != nil {
			return nil, err
		}

		item, err := order.RestoreItem(id, dto.ProductName, dto.Quantity, unitPrice, totalPrice, dto.Notes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
