package dto

import (
	"accountease/internal/core/id"
	"accountease/internal/domain/inventory"
)

// CreateItemRequest carries a new stock item.
type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	SKU         string  `json:"sku"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   string  `json:"unitPrice"`
	Date        string  `json:"date"`
}

// ToInput converts to the domain input.
func (r CreateItemRequest) ToInput() inventory.CreateItemInput {
	return inventory.CreateItemInput{
		Name:        r.Name,
		SKU:         r.SKU,
		Description: r.Description,
		Category:    r.Category,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Date:        r.Date,
	}
}

// UpdateItemRequest carries a partial item update.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	SKU         *string `json:"sku"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Quantity    *int64  `json:"quantity"`
	UnitPrice   *string `json:"unitPrice"`
	Date        *string `json:"date"`
}

// ToInput converts to the domain input.
func (r UpdateItemRequest) ToInput() inventory.UpdateItemInput {
	return inventory.UpdateItemInput{
		Name:        r.Name,
		SKU:         r.SKU,
		Description: r.Description,
		Category:    r.Category,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Date:        r.Date,
	}
}

// MovementRequest carries a new stock movement.
type MovementRequest struct {
	// ItemID is optional; the path parameter is authoritative
	ItemID    string  `json:"itemId"`
	Type      string  `json:"type" binding:"required"`
	Quantity  int64   `json:"quantity" binding:"required"`
	Date      string  `json:"date"`
	Reference *string `json:"reference"`
	Notes     *string `json:"notes"`
}

// ToInput converts to the domain input.
func (r MovementRequest) ToInput(itemID id.ID) inventory.MovementInput {
	return inventory.MovementInput{
		ItemID:    itemID,
		Type:      inventory.Direction(r.Type),
		Quantity:  r.Quantity,
		Date:      r.Date,
		Reference: r.Reference,
		Notes:     r.Notes,
	}
}
