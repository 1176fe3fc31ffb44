// Package records provides the money-record domain: sales and expenses kept
// in one polymorphic transactions collection distinguished by a type field,
// purchases kept in their own collection. The split is historical and
// consumers rely on type-scoped reads, so it is preserved rather than merged.
package records

import (
	"context"

	"accountease/internal/core/apperror"
	"accountease/internal/core/entity"
	"accountease/internal/core/types"
)

// TransactionType discriminates records inside the transactions collection.
type TransactionType string

const (
	TypeSale    TransactionType = "sale"
	TypeExpense TransactionType = "expense"
)

// PaymentMethod enumerates supported payment instruments.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCredit       PaymentMethod = "credit"
	PaymentCheque       PaymentMethod = "cheque"
)

// SaleStatus enumerates sale lifecycle states.
type SaleStatus string

const (
	StatusCompleted SaleStatus = "completed"
	StatusPending   SaleStatus = "pending"
	StatusCancelled SaleStatus = "cancelled"
)

// Transaction is a sale or expense money record.
// Business dates are ISO-8601 strings at the storage boundary and are parsed
// permissively by the report aggregator, never rejected here.
type Transaction struct {
	entity.Record

	// Type discriminates sale vs expense
	Type TransactionType `db:"type" json:"type"`

	// Date is the business date (ISO-8601 string)
	Date string `db:"date" json:"date"`

	Description string `db:"description" json:"description"`

	// Category groups expenses; optional for sales
	Category string `db:"category" json:"category,omitempty"`

	// CustomerName is set for sales
	CustomerName *string `db:"customer_name" json:"customerName,omitempty"`

	// Quantity and UnitPrice are set for sales
	Quantity  int64       `db:"quantity" json:"quantity,omitempty"`
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// Amount is the full monetary value of the record
	Amount types.Money `db:"amount" json:"amount"`

	// PaymentAmount tracks partial payments against Amount
	PaymentAmount types.Money `db:"payment_amount" json:"paymentAmount"`

	PaymentMethod PaymentMethod `db:"payment_method" json:"paymentMethod"`

	// BankAccountID references a bank account catalog entry (nullable)
	BankAccountID *string `db:"bank_account_id" json:"bankAccountId,omitempty"`

	Status SaleStatus `db:"status" json:"status"`

	Notes *string `db:"notes" json:"notes,omitempty"`

	Currency string `db:"currency" json:"currency"`
}

// NewTransaction creates a transaction with generated id and timestamps.
func NewTransaction(ownerID string, typ TransactionType) *Transaction {
	return &Transaction{
		Record:   entity.NewRecord(ownerID),
		Type:     typ,
		Status:   StatusCompleted,
		Currency: types.CurrencyCode,
	}
}

// Validate implements entity.Validatable.
func (t *Transaction) Validate(ctx context.Context) error {
	if t.Type != TypeSale && t.Type != TypeExpense {
		return apperror.NewInvalidArgument("invalid transaction type").
			WithDetail("field", "type").
			WithDetail("value", string(t.Type))
	}
	if t.Date == "" {
		return apperror.NewInvalidArgument("date is required").
			WithDetail("field", "date")
	}
	if t.Amount.IsNegative() {
		return apperror.NewInvalidArgument("amount cannot be negative").
			WithDetail("field", "amount")
	}
	return nil
}

// Purchase is a supplier purchase money record (separate collection).
type Purchase struct {
	entity.Record

	// PurchaseDate is the business date (ISO-8601 string)
	PurchaseDate string `db:"purchase_date" json:"purchaseDate"`

	SupplierCategory string `db:"supplier_category" json:"supplierCategory"`
	SupplierName     string `db:"supplier_name" json:"supplierName"`

	Amount      types.Money `db:"amount" json:"amount"`
	Description string      `db:"description" json:"description"`

	// PaymentDate and PaymentAmount track settlement against Amount
	PaymentDate   string      `db:"payment_date" json:"paymentDate,omitempty"`
	PaymentAmount types.Money `db:"payment_amount" json:"paymentAmount"`

	PaymentMethod PaymentMethod `db:"payment_method" json:"paymentMethod"`
}

// NewPurchase creates a purchase with generated id and timestamps.
func NewPurchase(ownerID string) *Purchase {
	return &Purchase{
		Record: entity.NewRecord(ownerID),
	}
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if p.PurchaseDate == "" {
		return apperror.NewInvalidArgument("purchaseDate is required").
			WithDetail("field", "purchaseDate")
	}
	if p.SupplierName == "" {
		return apperror.NewInvalidArgument("supplierName is required").
			WithDetail("field", "supplierName")
	}
	if p.Amount.IsNegative() {
		return apperror.NewInvalidArgument("amount cannot be negative").
			WithDetail("field", "amount")
	}
	return nil
}

// Outstanding returns the unpaid balance of the purchase.
func (p *Purchase) Outstanding() types.Money {
	return p.Amount.Sub(p.PaymentAmount)
}

// IsPaid reports whether the purchase is fully settled.
func (p *Purchase) IsPaid() bool {
	return !p.Outstanding().IsPositive()
}
