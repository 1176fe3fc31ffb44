package category

import (
	"context"

	"accountease/internal/core/id"
)

// Repository persists categories scoped to an owner.
type Repository interface {
	Insert(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, ownerID string, categoryID id.ID) (*Category, error)
	// ListByOwner returns the owner's categories of one kind.
	ListByOwner(ctx context.Context, ownerID string, kind Kind) ([]*Category, error)
	UpdateFields(ctx context.Context, ownerID string, categoryID id.ID, fields map[string]any) error
	Delete(ctx context.Context, ownerID string, categoryID id.ID) error
}
