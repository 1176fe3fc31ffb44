// Package record_repo provides PostgreSQL implementations for the money
// record repositories.
package record_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"accountease/internal/core/id"
	"accountease/internal/domain/records"
	"accountease/internal/infrastructure/storage/postgres"
)

// TransactionRepo implements records.TransactionRepository. Sales and
// expenses share the transactions table, discriminated by the type column.
type TransactionRepo struct {
	*postgres.OwnerRepo[records.Transaction]
}

var _ records.TransactionRepository = (*TransactionRepo)(nil)

// NewTransactionRepo creates a new transaction repository.
func NewTransactionRepo(txm *postgres.TxManager) *TransactionRepo {
	return &TransactionRepo{
		OwnerRepo: postgres.NewOwnerRepo[records.Transaction](txm, "transactions", "transaction"),
	}
}

func (r *TransactionRepo) Insert(ctx context.Context, tx *records.Transaction) error {
	return r.OwnerRepo.Insert(ctx, tx)
}

func (r *TransactionRepo) GetByID(ctx context.Context, ownerID string, txID id.ID) (*records.Transaction, error) {
	return r.GetOwned(ctx, ownerID, txID)
}

func (r *TransactionRepo) ListByOwner(ctx context.Context, ownerID string, typ records.TransactionType) ([]records.Transaction, error) {
	if typ == "" {
		return r.ListOwned(ctx, ownerID)
	}
	return r.ListOwned(ctx, ownerID, squirrel.Eq{"type": typ})
}

func (r *TransactionRepo) UpdateFields(ctx context.Context, ownerID string, txID id.ID, fields map[string]any) error {
	return r.UpdateOwned(ctx, ownerID, txID, fields)
}

func (r *TransactionRepo) Delete(ctx context.Context, ownerID string, txID id.ID) error {
	return r.DeleteOwned(ctx, ownerID, txID)
}
