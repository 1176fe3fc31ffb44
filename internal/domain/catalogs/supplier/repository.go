package supplier

import (
	"context"

	"accountease/internal/core/id"
)

// Repository persists suppliers scoped to an owner.
type Repository interface {
	Insert(ctx context.Context, supplier *Supplier) error
	GetByID(ctx context.Context, ownerID string, supplierID id.ID) (*Supplier, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Supplier, error)
	UpdateFields(ctx context.Context, ownerID string, supplierID id.ID, fields map[string]any) error
	Delete(ctx context.Context, ownerID string, supplierID id.ID) error
}
