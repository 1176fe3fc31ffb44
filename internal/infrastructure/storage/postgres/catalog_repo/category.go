package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"accountease/internal/core/id"
	"accountease/internal/domain/catalogs/category"
	"accountease/internal/infrastructure/storage/postgres"
)

// CategoryRepo implements category.Repository. One table backs all
// category kinds; reads always filter by kind.
type CategoryRepo struct {
	*postgres.OwnerRepo[category.Category]
}

var _ category.Repository = (*CategoryRepo)(nil)

// NewCategoryRepo creates a new category repository.
func NewCategoryRepo(txm *postgres.TxManager) *CategoryRepo {
	return &CategoryRepo{
		OwnerRepo: postgres.NewOwnerRepo[category.Category](txm, "categories", "category"),
	}
}

func (r *CategoryRepo) Insert(ctx context.Context, c *category.Category) error {
	return r.OwnerRepo.Insert(ctx, c)
}

func (r *CategoryRepo) GetByID(ctx context.Context, ownerID string, categoryID id.ID) (*category.Category, error) {
	return r.GetOwned(ctx, ownerID, categoryID)
}

func (r *CategoryRepo) ListByOwner(ctx context.Context, ownerID string, kind category.Kind) ([]*category.Category, error) {
	categories, err := r.ListOwned(ctx, ownerID, squirrel.Eq{"kind": kind})
	if err != nil {
		return nil, err
	}
	out := make([]*category.Category, len(categories))
	for i := range categories {
		out[i] = &categories[i]
	}
	return out, nil
}

func (r *CategoryRepo) UpdateFields(ctx context.Context, ownerID string, categoryID id.ID, fields map[string]any) error {
	return r.UpdateOwned(ctx, ownerID, categoryID, fields)
}

func (r *CategoryRepo) Delete(ctx context.Context, ownerID string, categoryID id.ID) error {
	return r.DeleteOwned(ctx, ownerID, categoryID)
}
