package inventory

import (
	"context"

	"accountease/internal/core/id"
)

// ItemRepository is the record-store contract for stock items.
type ItemRepository interface {
	Insert(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, ownerID string, itemID id.ID) (*Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Item, error)
	// UpdateFields applies a partial update by column name.
	UpdateFields(ctx context.Context, ownerID string, itemID id.ID, fields map[string]any) error
	Delete(ctx context.Context, ownerID string, itemID id.ID) error
}

// MovementRepository is the record-store contract for the movement ledger.
// Movements are append-only.
type MovementRepository interface {
	Insert(ctx context.Context, m *Movement) error
	// ListByOwner returns all movements for the owner; itemID narrows to a
	// single item's history when non-nil.
	ListByOwner(ctx context.Context, ownerID string, itemID *id.ID) ([]Movement, error)
}
