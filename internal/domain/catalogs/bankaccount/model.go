// Package bankaccount provides the bank account catalog.
package bankaccount

import (
	"context"

	"accountease/internal/core/apperror"
	"accountease/internal/core/entity"
)

// BankAccount is a bank account used for payments on sales and expenses.
type BankAccount struct {
	entity.Record

	BankName      string  `db:"bank_name" json:"bankName"`
	AccountNumber string  `db:"account_number" json:"accountNumber"`
	AccountHolder string  `db:"account_holder" json:"accountHolder"`
	Category      string  `db:"category" json:"category"`
	Branch        *string `db:"branch" json:"branch,omitempty"`
	SwiftCode     *string `db:"swift_code" json:"swiftCode,omitempty"`
}

// New creates a bank account with generated id and timestamps.
func New(ownerID string) *BankAccount {
	return &BankAccount{Record: entity.NewRecord(ownerID)}
}

// Validate implements entity.Validatable.
func (b *BankAccount) Validate(ctx context.Context) error {
	if b.BankName == "" {
		return apperror.NewInvalidArgument("bankName is required").
			WithDetail("field", "bankName")
	}
	if b.AccountNumber == "" {
		return apperror.NewInvalidArgument("accountNumber is required").
			WithDetail("field", "accountNumber")
	}
	if b.AccountHolder == "" {
		return apperror.NewInvalidArgument("accountHolder is required").
			WithDetail("field", "accountHolder")
	}
	return nil
}
