package records

import (
	"context"

	"accountease/internal/core/id"
)

// TransactionRepository is the record-store contract for the polymorphic
// sales/expenses collection. Fetches are equality-filtered by owner and
// optionally by type; the entire matching set is always returned.
type TransactionRepository interface {
	Insert(ctx context.Context, tx *Transaction) error
	GetByID(ctx context.Context, ownerID string, txID id.ID) (*Transaction, error)
	// ListByOwner returns all transactions for the owner; typ narrows by
	// discriminator when non-empty.
	ListByOwner(ctx context.Context, ownerID string, typ TransactionType) ([]Transaction, error)
	// UpdateFields applies a partial update by column name.
	UpdateFields(ctx context.Context, ownerID string, txID id.ID, fields map[string]any) error
	Delete(ctx context.Context, ownerID string, txID id.ID) error
}

// PurchaseRepository is the record-store contract for the purchases collection.
type PurchaseRepository interface {
	Insert(ctx context.Context, p *Purchase) error
	GetByID(ctx context.Context, ownerID string, purchaseID id.ID) (*Purchase, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Purchase, error)
	UpdateFields(ctx context.Context, ownerID string, purchaseID id.ID, fields map[string]any) error
	Delete(ctx context.Context, ownerID string, purchaseID id.ID) error
}
