package category

import (
	"context"
	"fmt"
	"time"

	"accountease/internal/core/apperror"
	appctx "accountease/internal/core/context"
	"accountease/internal/core/id"
	"accountease/pkg/logger"
)

// Service provides owner-scoped CRUD over one kind of category.
type Service struct {
	categories Repository
}

func NewService(categories Repository) *Service {
	return &Service{categories: categories}
}

// Create registers a new category of the given kind for the caller.
func (s *Service) Create(ctx context.Context, kind Kind, name string, description *string) (*Category, error) {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, apperror.NewNotAuthenticated()
	}

	c := New(ownerID, kind)
	c.Name = name
	c.Description = description

	if err := c.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.categories.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	logger.Info(ctx, "category created", "category_id", c.ID, "kind", kind, "name", name)
	return c, nil
}

// List returns the caller's categories of the given kind.
func (s *Service) List(ctx context.Context, kind Kind) ([]*Category, error) {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, apperror.NewNotAuthenticated()
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	return s.categories.ListByOwner(ctx, ownerID, kind)
}

// Update applies a partial update. The kind of a category never changes.
func (s *Service) Update(ctx context.Context, categoryID id.ID, fields map[string]any) error {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return apperror.NewNotAuthenticated()
	}
	if len(fields) == 0 {
		return apperror.NewInvalidArgument("no fields to update")
	}
	delete(fields, "kind")
	fields["updated_at"] = time.Now().UTC()
	return s.categories.UpdateFields(ctx, ownerID, categoryID, fields)
}

// Delete removes a category. Records referencing it keep their stored name.
func (s *Service) Delete(ctx context.Context, categoryID id.ID) error {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return apperror.NewNotAuthenticated()
	}
	return s.categories.Delete(ctx, ownerID, categoryID)
}
