package dto

import (
	"accountease/internal/core/apperror"
	"accountease/internal/core/types"
	"accountease/internal/domain/records"
)

// TransactionRequest carries a new sale or expense.
type TransactionRequest struct {
	Date          string  `json:"date"`
	Description   string  `json:"description" binding:"required"`
	Category      string  `json:"category"`
	CustomerName  *string `json:"customerName"`
	Quantity      int64   `json:"quantity"`
	UnitPrice     string  `json:"unitPrice"`
	Amount        string  `json:"amount" binding:"required"`
	PaymentAmount string  `json:"paymentAmount"`
	PaymentMethod string  `json:"paymentMethod"`
	BankAccountID *string `json:"bankAccountId"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes"`
}

// ToInput converts to the domain input.
func (r TransactionRequest) ToInput() records.TransactionInput {
	return records.TransactionInput{
		Date:          r.Date,
		Description:   r.Description,
		Category:      r.Category,
		CustomerName:  r.CustomerName,
		Quantity:      r.Quantity,
		UnitPrice:     r.UnitPrice,
		Amount:        r.Amount,
		PaymentAmount: r.PaymentAmount,
		PaymentMethod: records.PaymentMethod(r.PaymentMethod),
		BankAccountID: r.BankAccountID,
		Status:        records.SaleStatus(r.Status),
		Notes:         r.Notes,
	}
}

// UpdateTransactionRequest carries a partial transaction update. Only
// present fields are written.
type UpdateTransactionRequest struct {
	Date          *string `json:"date"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	CustomerName  *string `json:"customerName"`
	Quantity      *int64  `json:"quantity"`
	UnitPrice     *string `json:"unitPrice"`
	Amount        *string `json:"amount"`
	PaymentAmount *string `json:"paymentAmount"`
	PaymentMethod *string `json:"paymentMethod"`
	BankAccountID *string `json:"bankAccountId"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
}

// Fields maps present values to storage columns.
func (r UpdateTransactionRequest) Fields() (map[string]any, error) {
	fields := map[string]any{}
	putString(fields, "date", r.Date)
	putString(fields, "description", r.Description)
	putString(fields, "category", r.Category)
	putString(fields, "payment_method", r.PaymentMethod)
	putString(fields, "status", r.Status)
	if r.CustomerName != nil {
		fields["customer_name"] = r.CustomerName
	}
	if r.Quantity != nil {
		fields["quantity"] = *r.Quantity
	}
	if r.BankAccountID != nil {
		fields["bank_account_id"] = r.BankAccountID
	}
	if r.Notes != nil {
		fields["notes"] = r.Notes
	}
	if err := putMoney(fields, "unit_price", r.UnitPrice); err != nil {
		return nil, err
	}
	if err := putMoney(fields, "amount", r.Amount); err != nil {
		return nil, err
	}
	if err := putMoney(fields, "payment_amount", r.PaymentAmount); err != nil {
		return nil, err
	}
	return fields, nil
}

// PurchaseRequest carries a new purchase.
type PurchaseRequest struct {
	PurchaseDate     string `json:"purchaseDate"`
	SupplierCategory string `json:"supplierCategory"`
	SupplierName     string `json:"supplierName" binding:"required"`
	Amount           string `json:"amount" binding:"required"`
	Description      string `json:"description"`
	PaymentDate      string `json:"paymentDate"`
	PaymentAmount    string `json:"paymentAmount"`
	PaymentMethod    string `json:"paymentMethod"`
}

// ToInput converts to the domain input.
func (r PurchaseRequest) ToInput() records.PurchaseInput {
	return records.PurchaseInput{
		PurchaseDate:     r.PurchaseDate,
		SupplierCategory: r.SupplierCategory,
		SupplierName:     r.SupplierName,
		Amount:           r.Amount,
		Description:      r.Description,
		PaymentDate:      r.PaymentDate,
		PaymentAmount:    r.PaymentAmount,
		PaymentMethod:    records.PaymentMethod(r.PaymentMethod),
	}
}

// UpdatePurchaseRequest carries a partial purchase update.
type UpdatePurchaseRequest struct {
	PurchaseDate     *string `json:"purchaseDate"`
	SupplierCategory *string `json:"supplierCategory"`
	SupplierName     *string `json:"supplierName"`
	Amount           *string `json:"amount"`
	Description      *string `json:"description"`
	PaymentDate      *string `json:"paymentDate"`
	PaymentAmount    *string `json:"paymentAmount"`
	PaymentMethod    *string `json:"paymentMethod"`
}

// Fields maps present values to storage columns.
func (r UpdatePurchaseRequest) Fields() (map[string]any, error) {
	fields := map[string]any{}
	putString(fields, "purchase_date", r.PurchaseDate)
	putString(fields, "supplier_category", r.SupplierCategory)
	putString(fields, "supplier_name", r.SupplierName)
	putString(fields, "description", r.Description)
	putString(fields, "payment_date", r.PaymentDate)
	putString(fields, "payment_method", r.PaymentMethod)
	if err := putMoney(fields, "amount", r.Amount); err != nil {
		return nil, err
	}
	if err := putMoney(fields, "payment_amount", r.PaymentAmount); err != nil {
		return nil, err
	}
	return fields, nil
}

func putString(fields map[string]any, col string, val *string) {
	if val != nil {
		fields[col] = *val
	}
}

func putMoney(fields map[string]any, col string, val *string) error {
	if val == nil {
		return nil
	}
	amount, err := types.NewMoneyFromString(*val)
	if err != nil {
		return apperror.NewInvalidArgument("malformed amount: " + *val).
			WithDetail("field", col)
	}
	fields[col] = amount
	return nil
}
