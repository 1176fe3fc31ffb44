// Package supplier provides the supplier catalog.
package supplier

import (
	"context"

	"accountease/internal/core/apperror"
	"accountease/internal/core/entity"
)

// Supplier is a vendor purchases are made from.
type Supplier struct {
	entity.Record

	Name     string  `db:"name" json:"name"`
	Category string  `db:"category" json:"category"`
	Phone    *string `db:"phone" json:"phone,omitempty"`
	Email    *string `db:"email" json:"email,omitempty"`
	Address  *string `db:"address" json:"address,omitempty"`
	Notes    *string `db:"notes" json:"notes,omitempty"`
}

// New creates a supplier with generated id and timestamps.
func New(ownerID string) *Supplier {
	return &Supplier{Record: entity.NewRecord(ownerID)}
}

// Validate implements entity.Validatable.
func (s *Supplier) Validate(ctx context.Context) error {
	if s.Name == "" {
		return apperror.NewInvalidArgument("name is required").
			WithDetail("field", "name")
	}
	return nil
}
