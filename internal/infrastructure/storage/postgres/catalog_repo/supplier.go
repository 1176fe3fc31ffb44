package catalog_repo

import (
	"context"

	"accountease/internal/core/id"
	"accountease/internal/domain/catalogs/supplier"
	"accountease/internal/infrastructure/storage/postgres"
)

// SupplierRepo implements supplier.Repository.
type SupplierRepo struct {
	*postgres.OwnerRepo[supplier.Supplier]
}

var _ supplier.Repository = (*SupplierRepo)(nil)

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(txm *postgres.TxManager) *SupplierRepo {
	return &SupplierRepo{
		OwnerRepo: postgres.NewOwnerRepo[supplier.Supplier](txm, "suppliers", "supplier"),
	}
}

func (r *SupplierRepo) Insert(ctx context.Context, s *supplier.Supplier) error {
	return r.OwnerRepo.Insert(ctx, s)
}

func (r *SupplierRepo) GetByID(ctx context.Context, ownerID string, supplierID id.ID) (*supplier.Supplier, error) {
	return r.GetOwned(ctx, ownerID, supplierID)
}

func (r *SupplierRepo) ListByOwner(ctx context.Context, ownerID string) ([]*supplier.Supplier, error) {
	suppliers, err := r.ListOwned(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*supplier.Supplier, len(suppliers))
	for i := range suppliers {
		out[i] = &suppliers[i]
	}
	return out, nil
}

func (r *SupplierRepo) UpdateFields(ctx context.Context, ownerID string, supplierID id.ID, fields map[string]any) error {
	return r.UpdateOwned(ctx, ownerID, supplierID, fields)
}

func (r *SupplierRepo) Delete(ctx context.Context, ownerID string, supplierID id.ID) error {
	return r.DeleteOwned(ctx, ownerID, supplierID)
}
