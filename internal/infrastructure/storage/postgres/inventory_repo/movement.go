package inventory_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"accountease/internal/core/id"
	"accountease/internal/domain/inventory"
	"accountease/internal/infrastructure/storage/postgres"
)

// MovementRepo implements inventory.MovementRepository. The movements
// table is append-only; there is no update or delete path.
type MovementRepo struct {
	*postgres.OwnerRepo[inventory.Movement]
}

var _ inventory.MovementRepository = (*MovementRepo)(nil)

// NewMovementRepo creates a new movement repository.
func NewMovementRepo(txm *postgres.TxManager) *MovementRepo {
	return &MovementRepo{
		OwnerRepo: postgres.NewOwnerRepo[inventory.Movement](txm, "inventory_movements", "inventory movement"),
	}
}

func (r *MovementRepo) Insert(ctx context.Context, m *inventory.Movement) error {
	return r.OwnerRepo.Insert(ctx, m)
}

func (r *MovementRepo) ListByOwner(ctx context.Context, ownerID string, itemID *id.ID) ([]inventory.Movement, error) {
	if itemID == nil {
		return r.ListOwned(ctx, ownerID)
	}
	return r.ListOwned(ctx, ownerID, squirrel.Eq{"item_id": *itemID})
}
