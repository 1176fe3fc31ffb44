// Package report_repo provides the PostgreSQL-backed data source for
// report aggregation.
package report_repo

import (
	"context"

	"accountease/internal/domain/inventory"
	"accountease/internal/domain/records"
	"accountease/internal/domain/reports"
)

// Source feeds the report aggregator from the record repositories.
// Aggregation happens in memory over the full fetched set, so this is a
// thin fan-out over the existing owner-scoped list queries.
type Source struct {
	transactions records.TransactionRepository
	purchases    records.PurchaseRepository
	items        inventory.ItemRepository
}

var _ reports.Source = (*Source)(nil)

// NewSource creates a new report data source.
func NewSource(
	transactions records.TransactionRepository,
	purchases records.PurchaseRepository,
	items inventory.ItemRepository,
) *Source {
	return &Source{
		transactions: transactions,
		purchases:    purchases,
		items:        items,
	}
}

func (s *Source) Transactions(ctx context.Context, ownerID string, typ records.TransactionType) ([]records.Transaction, error) {
	return s.transactions.ListByOwner(ctx, ownerID, typ)
}

func (s *Source) Purchases(ctx context.Context, ownerID string) ([]records.Purchase, error) {
	return s.purchases.ListByOwner(ctx, ownerID)
}

func (s *Source) Items(ctx context.Context, ownerID string) ([]inventory.Item, error) {
	return s.items.ListByOwner(ctx, ownerID)
}
