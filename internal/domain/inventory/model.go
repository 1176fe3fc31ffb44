// Package inventory provides the stock item ledger. Movement history is the
// source of truth; the quantity and total amount cached on an item can be
// rebuilt from it at any time (see Service.Reconcile).
package inventory

import (
	"context"

	"accountease/internal/core/apperror"
	"accountease/internal/core/entity"
	"accountease/internal/core/id"
	"accountease/internal/core/types"
)

// Direction of a stock movement.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Item is a stock item. InitialQuantity and InitialUnitPrice are immutable
// snapshots taken at creation; Quantity and UnitPrice are current values and
// TotalAmount must always equal Quantity * UnitPrice.
type Item struct {
	entity.Record

	Name string `db:"name" json:"name"`
	SKU  string `db:"sku" json:"sku"`

	Description *string `db:"description" json:"description,omitempty"`

	// Category references an inventory category by name
	Category string `db:"category" json:"category"`

	// Immutable creation snapshots
	InitialQuantity  int64       `db:"initial_quantity" json:"initialQuantity"`
	InitialUnitPrice types.Money `db:"initial_unit_price" json:"initialUnitPrice"`

	// Current state
	Quantity  int64       `db:"quantity" json:"quantity"`
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// TotalAmount is derived: Quantity * UnitPrice, recomputed on every mutation
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`

	// Date is the item's business date (ISO-8601 string)
	Date string `db:"date" json:"date"`
}

// NewItem creates an item, snapshotting the initial quantity and unit price.
func NewItem(ownerID, name, sku, category string, quantity int64, unitPrice types.Money) *Item {
	return &Item{
		Record:           entity.NewRecord(ownerID),
		Name:             name,
		SKU:              sku,
		Category:         category,
		InitialQuantity:  quantity,
		InitialUnitPrice: unitPrice,
		Quantity:         quantity,
		UnitPrice:        unitPrice,
		TotalAmount:      totalAmount(quantity, unitPrice),
	}
}

// Validate implements entity.Validatable.
func (i *Item) Validate(ctx context.Context) error {
	if i.Name == "" {
		return apperror.NewInvalidArgument("name is required").
			WithDetail("field", "name")
	}
	if i.UnitPrice.IsNegative() {
		return apperror.NewInvalidArgument("unitPrice cannot be negative").
			WithDetail("field", "unitPrice")
	}
	return nil
}

// InStock reports whether the item has stock on hand. Quantity zero is
// "out of stock"; negative quantity is not forbidden anywhere in the model.
func (i *Item) InStock() bool {
	return i.Quantity > 0
}

// Recompute refreshes the derived TotalAmount from current quantity and price.
func (i *Item) Recompute() {
	i.TotalAmount = totalAmount(i.Quantity, i.UnitPrice)
}

func totalAmount(quantity int64, unitPrice types.Money) types.Money {
	return unitPrice.Mul(types.NewMoneyFromInt(quantity))
}

// Movement is one immutable stock-movement ledger entry. There is no update
// or delete path for movements.
type Movement struct {
	entity.Record

	ItemID id.ID `db:"item_id" json:"itemId"`

	Type Direction `db:"type" json:"type"`

	// Quantity moved, always strictly positive; Type carries the sign
	Quantity int64 `db:"quantity" json:"quantity"`

	// Date is the movement's business date (ISO-8601 string)
	Date string `db:"date" json:"date"`

	// Reference points to the purchase or sale that caused the movement
	Reference *string `db:"reference" json:"reference,omitempty"`

	Notes *string `db:"notes" json:"notes,omitempty"`
}

// SignedQuantity returns the quantity with the direction applied.
func (m *Movement) SignedQuantity() int64 {
	if m.Type == DirectionOut {
		return -m.Quantity
	}
	return m.Quantity
}
