package commands

import (
	"errors"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/order"
	"varto/internal/pkg/errs"
	"varto/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is one requested line item. Quantity and price semantics are
// validated when the domain Item is built.
type ItemInput struct {
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	Notes       string
}

// AddressInput is the raw destination address as received from the caller.
type AddressInput struct {
	Street     string
	District   string
	City       string
	Directions string
}

// OrderDetailsInput carries the optional and payment-related order fields.
type OrderDetailsInput struct {
	ExternalOrderID *string
	CustomerID      *kernel.UUID
	CustomerPhone   string
	DeliveryNotes   string
	DeliveryFee     kernel.Money
	PaymentMethod   string
	IBANInfo        string
}

// CreateOrderCommand represents a request to register a new delivery order
// in pending status.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	vendorID kernel.UUID
	address  AddressInput
	items    []ItemInput
	details  OrderDetailsInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Identity and shape are validated here; business rules (item totals,
// address fields, payment method) belong to the aggregate constructors.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	vendorID kernel.UUID,
	address AddressInput,
	items []ItemInput,
	details OrderDetailsInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVendorID(vendorID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.address = address
	cmd.details = details
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the owning vendor's identifier.
func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Address returns the raw destination address.
func (c CreateOrderCommand) Address() AddressInput {
	return c.address
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

// Details returns the optional and payment-related fields.
func (c CreateOrderCommand) Details() OrderDetailsInput {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	c.vendorID = vendorID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}

// toDomain builds the validated domain pieces from the raw input.
func (c CreateOrderCommand) toDomain() (kernel.Address, []*order.Item, order.Details, error) {
	address, err := kernel.NewAddress(c.address.Street, c.address.District,
		c.address.City, c.address.Directions)
	if err != nil {
		return kernel.Address{}, nil, order.Details{}, err
	}

	items := make([]*order.Item, 0, len(c.items))
	for _, in := range c.items {
		item, err := order.NewItem(kernel.NewUUID(), in.ProductName, in.Quantity,
			in.UnitPrice, in.Notes)
		if err != nil {
			return kernel.Address{}, nil, order.Details{}, err
		}
		items = append(items, item)
	}

	details := order.Details{
		ExternalOrderID: c.details.ExternalOrderID,
		CustomerID:      c.details.CustomerID,
		CustomerPhone:   c.details.CustomerPhone,
		DeliveryNotes:   c.details.DeliveryNotes,
		DeliveryFee:     c.details.DeliveryFee,
		PaymentMethod:   order.PaymentMethod(c.details.PaymentMethod),
		IBANInfo:        c.details.IBANInfo,
	}
	if err := details.PaymentMethod.Validate(); err != nil {
		return kernel.Address{}, nil, order.Details{}, err
	}
	return address, items, details, nil
}
