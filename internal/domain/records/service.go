package records

import (
	"context"
	"fmt"
	"time"

	"accountease/internal/core/apperror"
	appctx "accountease/internal/core/context"
	"accountease/internal/core/id"
	"accountease/internal/domain/audit"
	"accountease/pkg/logger"
)

// Service provides owner-scoped CRUD over money records.
type Service struct {
	transactions TransactionRepository
	purchases    PurchaseRepository
	auditor      audit.Recorder
}

// NewService creates a new records service.
func NewService(transactions TransactionRepository, purchases PurchaseRepository, auditor audit.Recorder) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{
		transactions: transactions,
		purchases:    purchases,
		auditor:      auditor,
	}
}

// ownerFromContext resolves the owner identity or fails before any store call.
func ownerFromContext(ctx context.Context) (string, error) {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return "", apperror.NewNotAuthenticated()
	}
	return ownerID, nil
}

// --- Transactions (sales and expenses) ---

// TransactionInput carries the caller-supplied fields of a sale or expense.
type TransactionInput struct {
	Date          string
	Description   string
	Category      string
	CustomerName  *string
	Quantity      int64
	UnitPrice     string
	Amount        string
	PaymentAmount string
	PaymentMethod PaymentMethod
	BankAccountID *string
	Status        SaleStatus
	Notes         *string
}

// AddTransaction creates a sale or expense record.
func (s *Service) AddTransaction(ctx context.Context, typ TransactionType, in TransactionInput) (*Transaction, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	tx := NewTransaction(ownerID, typ)
	tx.Date = in.Date
	tx.Description = in.Description
	tx.Category = in.Category
	tx.CustomerName = in.CustomerName
	tx.Quantity = in.Quantity
	tx.PaymentMethod = in.PaymentMethod
	tx.BankAccountID = in.BankAccountID
	tx.Notes = in.Notes
	if in.Status != "" {
		tx.Status = in.Status
	}

	if tx.UnitPrice, err = parseMoney(in.UnitPrice, "unitPrice"); err != nil {
		return nil, err
	}
	if tx.Amount, err = parseMoney(in.Amount, "amount"); err != nil {
		return nil, err
	}
	if tx.PaymentAmount, err = parseMoney(in.PaymentAmount, "paymentAmount"); err != nil {
		return nil, err
	}

	if err := tx.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.transactions.Insert(ctx, tx); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	if err := s.auditor.Record(ctx, "transaction", tx.ID, audit.ActionCreate, tx); err != nil {
		logger.Warn(ctx, "audit record failed", "entity", "transaction", "error", err)
	}

	logger.Info(ctx, "transaction created", "transaction_id", tx.ID, "type", typ)
	return tx, nil
}

// ListTransactions returns all of the owner's transactions, optionally
// narrowed by type. The full matching set is fetched; there is no pagination.
func (s *Service) ListTransactions(ctx context.Context, typ TransactionType) ([]Transaction, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.transactions.ListByOwner(ctx, ownerID, typ)
}

// GetTransaction returns a single transaction owned by the caller.
func (s *Service) GetTransaction(ctx context.Context, txID id.ID) (*Transaction, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.transactions.GetByID(ctx, ownerID, txID)
}

// UpdateTransaction applies a partial update. Field names follow storage
// column names; the repository stamps updated_at.
func (s *Service) UpdateTransaction(ctx context.Context, txID id.ID, fields map[string]any) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return apperror.NewInvalidArgument("no fields to update")
	}

	fields["updated_at"] = time.Now().UTC()
	if err := s.transactions.UpdateFields(ctx, ownerID, txID, fields); err != nil {
		return err
	}

	if err := s.auditor.Record(ctx, "transaction", txID, audit.ActionUpdate, fields); err != nil {
		logger.Warn(ctx, "audit record failed", "entity", "transaction", "error", err)
	}
	return nil
}

// DeleteTransaction removes a transaction. Deletion is immediate and terminal.
func (s *Service) DeleteTransaction(ctx context.Context, txID id.ID) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}
	if err := s.transactions.Delete(ctx, ownerID, txID); err != nil {
		return err
	}

	if err := s.auditor.Record(ctx, "transaction", txID, audit.ActionDelete, nil); err != nil {
		logger.Warn(ctx, "audit record failed", "entity", "transaction", "error", err)
	}
	return nil
}

// --- Purchases ---

// PurchaseInput carries the caller-supplied fields of a purchase.
type PurchaseInput struct {
	PurchaseDate     string
	SupplierCategory string
	SupplierName     string
	Amount           string
	Description      string
	PaymentDate      string
	PaymentAmount    string
	PaymentMethod    PaymentMethod
}

// AddPurchase creates a purchase record.
func (s *Service) AddPurchase(ctx context.Context, in PurchaseInput) (*Purchase, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	p := NewPurchase(ownerID)
	p.PurchaseDate = in.PurchaseDate
	p.SupplierCategory = in.SupplierCategory
	p.SupplierName = in.SupplierName
	p.Description = in.Description
	p.PaymentDate = in.PaymentDate
	p.PaymentMethod = in.PaymentMethod

	if p.Amount, err = parseMoney(in.Amount, "amount"); err != nil {
		return nil, err
	}
	if p.PaymentAmount, err = parseMoney(in.PaymentAmount, "paymentAmount"); err != nil {
		return nil, err
	}

	if err := p.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.purchases.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("insert purchase: %w", err)
	}

	if err := s.auditor.Record(ctx, "purchase", p.ID, audit.ActionCreate, p); err != nil {
		logger.Warn(ctx, "audit record failed", "entity", "purchase", "error", err)
	}

	logger.Info(ctx, "purchase created", "purchase_id", p.ID, "supplier", p.SupplierName)
	return p, nil
}

// ListPurchases returns all of the owner's purchases.
func (s *Service) ListPurchases(ctx context.Context) ([]Purchase, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.purchases.ListByOwner(ctx, ownerID)
}

// UpdatePurchase applies a partial update to a purchase.
func (s *Service) UpdatePurchase(ctx context.Context, purchaseID id.ID, fields map[string]any) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return apperror.NewInvalidArgument("no fields to update")
	}

	fields["updated_at"] = time.Now().UTC()
	if err := s.purchases.UpdateFields(ctx, ownerID, purchaseID, fields); err != nil {
		return err
	}

	if err := s.auditor.Record(ctx, "purchase", purchaseID, audit.ActionUpdate, fields); err != nil {
		logger.Warn(ctx, "audit record failed", "entity", "purchase", "error", err)
	}
	return nil
}

// DeletePurchase removes a purchase record.
func (s *Service) DeletePurchase(ctx context.Context, purchaseID id.ID) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}
	if err := s.purchases.Delete(ctx, ownerID, purchaseID); err != nil {
		return err
	}

	if err := s.auditor.Record(ctx, "purchase", purchaseID, audit.ActionDelete, nil); err != nil {
		logger.Warn(ctx, "audit record failed", "entity", "purchase", "error", err)
	}
	return nil
}
