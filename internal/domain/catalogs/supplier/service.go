package supplier

import (
	"context"
	"fmt"
	"time"

	"accountease/internal/core/apperror"
	appctx "accountease/internal/core/context"
	"accountease/internal/core/id"
	"accountease/pkg/logger"
)

// Service provides owner-scoped CRUD over suppliers.
type Service struct {
	suppliers Repository
}

func NewService(suppliers Repository) *Service {
	return &Service{suppliers: suppliers}
}

// Input carries the caller-supplied fields of a supplier.
type Input struct {
	Name     string
	Category string
	Phone    *string
	Email    *string
	Address  *string
	Notes    *string
}

// Create registers a new supplier for the caller.
func (s *Service) Create(ctx context.Context, in Input) (*Supplier, error) {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, apperror.NewNotAuthenticated()
	}

	sup := New(ownerID)
	sup.Name = in.Name
	sup.Category = in.Category
	sup.Phone = in.Phone
	sup.Email = in.Email
	sup.Address = in.Address
	sup.Notes = in.Notes

	if err := sup.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.suppliers.Insert(ctx, sup); err != nil {
		return nil, fmt.Errorf("insert supplier: %w", err)
	}

	logger.Info(ctx, "supplier created", "supplier_id", sup.ID, "name", sup.Name)
	return sup, nil
}

// List returns all of the caller's suppliers.
func (s *Service) List(ctx context.Context) ([]*Supplier, error) {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, apperror.NewNotAuthenticated()
	}
	return s.suppliers.ListByOwner(ctx, ownerID)
}

// Update applies a partial update to a supplier.
func (s *Service) Update(ctx context.Context, supplierID id.ID, fields map[string]any) error {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return apperror.NewNotAuthenticated()
	}
	if len(fields) == 0 {
		return apperror.NewInvalidArgument("no fields to update")
	}
	fields["updated_at"] = time.Now().UTC()
	return s.suppliers.UpdateFields(ctx, ownerID, supplierID, fields)
}

// Delete removes a supplier.
func (s *Service) Delete(ctx context.Context, supplierID id.ID) error {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return apperror.NewNotAuthenticated()
	}
	return s.suppliers.Delete(ctx, ownerID, supplierID)
}
