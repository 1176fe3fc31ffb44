// Package catalog_repo provides PostgreSQL implementations for catalog
// repositories.
package catalog_repo

import (
	"context"

	"accountease/internal/core/id"
	"accountease/internal/domain/catalogs/bankaccount"
	"accountease/internal/infrastructure/storage/postgres"
)

// BankAccountRepo implements bankaccount.Repository.
type BankAccountRepo struct {
	*postgres.OwnerRepo[bankaccount.BankAccount]
}

var _ bankaccount.Repository = (*BankAccountRepo)(nil)

// NewBankAccountRepo creates a new bank account repository.
func NewBankAccountRepo(txm *postgres.TxManager) *BankAccountRepo {
	return &BankAccountRepo{
		OwnerRepo: postgres.NewOwnerRepo[bankaccount.BankAccount](txm, "bank_accounts", "bank account"),
	}
}

func (r *BankAccountRepo) Insert(ctx context.Context, account *bankaccount.BankAccount) error {
	return r.OwnerRepo.Insert(ctx, account)
}

func (r *BankAccountRepo) GetByID(ctx context.Context, ownerID string, accountID id.ID) (*bankaccount.BankAccount, error) {
	return r.GetOwned(ctx, ownerID, accountID)
}

func (r *BankAccountRepo) ListByOwner(ctx context.Context, ownerID string) ([]*bankaccount.BankAccount, error) {
	accounts, err := r.ListOwned(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*bankaccount.BankAccount, len(accounts))
	for i := range accounts {
		out[i] = &accounts[i]
	}
	return out, nil
}

func (r *BankAccountRepo) UpdateFields(ctx context.Context, ownerID string, accountID id.ID, fields map[string]any) error {
	return r.UpdateOwned(ctx, ownerID, accountID, fields)
}

func (r *BankAccountRepo) Delete(ctx context.Context, ownerID string, accountID id.ID) error {
	return r.DeleteOwned(ctx, ownerID, accountID)
}
