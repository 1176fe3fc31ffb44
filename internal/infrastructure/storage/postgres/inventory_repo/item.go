// Package inventory_repo provides PostgreSQL implementations for the
// inventory item and movement repositories.
package inventory_repo

import (
	"context"

	"accountease/internal/core/id"
	"accountease/internal/domain/inventory"
	"accountease/internal/infrastructure/storage/postgres"
)

// ItemRepo implements inventory.ItemRepository.
type ItemRepo struct {
	*postgres.OwnerRepo[inventory.Item]
}

var _ inventory.ItemRepository = (*ItemRepo)(nil)

// NewItemRepo creates a new item repository.
func NewItemRepo(txm *postgres.TxManager) *ItemRepo {
	return &ItemRepo{
		OwnerRepo: postgres.NewOwnerRepo[inventory.Item](txm, "inventory_items", "inventory item"),
	}
}

func (r *ItemRepo) Insert(ctx context.Context, item *inventory.Item) error {
	return r.OwnerRepo.Insert(ctx, item)
}

func (r *ItemRepo) GetByID(ctx context.Context, ownerID string, itemID id.ID) (*inventory.Item, error) {
	return r.GetOwned(ctx, ownerID, itemID)
}

func (r *ItemRepo) ListByOwner(ctx context.Context, ownerID string) ([]inventory.Item, error) {
	return r.ListOwned(ctx, ownerID)
}

func (r *ItemRepo) UpdateFields(ctx context.Context, ownerID string, itemID id.ID, fields map[string]any) error {
	return r.UpdateOwned(ctx, ownerID, itemID, fields)
}

func (r *ItemRepo) Delete(ctx context.Context, ownerID string, itemID id.ID) error {
	return r.DeleteOwned(ctx, ownerID, itemID)
}
