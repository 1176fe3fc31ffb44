package record_repo

import (
	"context"

	"accountease/internal/core/id"
	"accountease/internal/domain/records"
	"accountease/internal/infrastructure/storage/postgres"
)

// PurchaseRepo implements records.PurchaseRepository.
type PurchaseRepo struct {
	*postgres.OwnerRepo[records.Purchase]
}

var _ records.PurchaseRepository = (*PurchaseRepo)(nil)

// NewPurchaseRepo creates a new purchase repository.
func NewPurchaseRepo(txm *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		OwnerRepo: postgres.NewOwnerRepo[records.Purchase](txm, "purchases", "purchase"),
	}
}

func (r *PurchaseRepo) Insert(ctx context.Context, p *records.Purchase) error {
	return r.OwnerRepo.Insert(ctx, p)
}

func (r *PurchaseRepo) GetByID(ctx context.Context, ownerID string, purchaseID id.ID) (*records.Purchase, error) {
	return r.GetOwned(ctx, ownerID, purchaseID)
}

func (r *PurchaseRepo) ListByOwner(ctx context.Context, ownerID string) ([]records.Purchase, error) {
	return r.ListOwned(ctx, ownerID)
}

func (r *PurchaseRepo) UpdateFields(ctx context.Context, ownerID string, purchaseID id.ID, fields map[string]any) error {
	return r.UpdateOwned(ctx, ownerID, purchaseID, fields)
}

func (r *PurchaseRepo) Delete(ctx context.Context, ownerID string, purchaseID id.ID) error {
	return r.DeleteOwned(ctx, ownerID, purchaseID)
}
