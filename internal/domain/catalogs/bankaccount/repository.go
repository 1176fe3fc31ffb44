package bankaccount

import (
	"context"

	"accountease/internal/core/id"
)

// Repository persists bank accounts scoped to an owner.
type Repository interface {
	Insert(ctx context.Context, account *BankAccount) error
	GetByID(ctx context.Context, ownerID string, accountID id.ID) (*BankAccount, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*BankAccount, error)
	UpdateFields(ctx context.Context, ownerID string, accountID id.ID, fields map[string]any) error
	Delete(ctx context.Context, ownerID string, accountID id.ID) error
}
