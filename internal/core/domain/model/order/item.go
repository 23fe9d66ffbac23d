package order

import (
	"errors"
	"fmt"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
	"varto/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a free-text product name (not a catalog
// reference), a positive quantity, and fixed-point prices. Items are owned
// exclusively by their order; deleting the order removes its items.
//
// The total price is derived once at construction time as
// unit price x quantity and stored; it is not re-derived on read.
type Item struct {
	id          kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money
	totalPrice  kernel.Money
	notes       string

	guard guard.ConstructorGuard
}

// NewItem creates a validated line item and computes its total price.
func NewItem(id kernel.UUID, productName string, quantity int, unitPrice kernel.Money, notes string) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.unitPrice = unitPrice
	item.totalPrice = unitPrice.MulInt(quantity)
	item.notes = notes

	return item, nil
}

// RestoreItem reconstructs a line item from persistence. The stored total
// price is taken as-is rather than re-derived.
func RestoreItem(
	id kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
	totalPrice kernel.Money,
	notes string,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.unitPrice = unitPrice
	item.totalPrice = totalPrice
	item.notes = notes

	return item, nil
}

// Validate ensures the Item was created through one of its constructors.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductName returns the free-text product description.
func (i *Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns the stored line total.
func (i *Item) TotalPrice() kernel.Money {
	return i.totalPrice
}

// Notes returns the optional line notes.
func (i *Item) Notes() string {
	return i.notes
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
