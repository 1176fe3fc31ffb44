// Package category provides the category catalogs. A single table backs
// three catalogs discriminated by kind: expense categories, supplier
// categories and inventory categories.
package category

import (
	"context"

	"accountease/internal/core/apperror"
	"accountease/internal/core/entity"
)

// Kind discriminates which catalog a category belongs to.
type Kind string

const (
	KindExpense   Kind = "expense"
	KindSupplier  Kind = "supplier"
	KindInventory Kind = "inventory"
)

// ParseKind validates a catalog kind string.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindExpense, KindSupplier, KindInventory:
		return Kind(raw), nil
	default:
		return "", apperror.NewInvalidArgument("unknown category kind: " + raw).
			WithDetail("kind", raw)
	}
}

// Category is a named grouping an owner assigns to records.
type Category struct {
	entity.Record

	Kind        Kind    `db:"kind" json:"kind"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
}

// New creates a category with generated id and timestamps.
func New(ownerID string, kind Kind) *Category {
	return &Category{Record: entity.NewRecord(ownerID), Kind: kind}
}

// Validate implements entity.Validatable.
func (c *Category) Validate(ctx context.Context) error {
	if _, err := ParseKind(string(c.Kind)); err != nil {
		return err
	}
	if c.Name == "" {
		return apperror.NewInvalidArgument("name is required").
			WithDetail("field", "name")
	}
	return nil
}
