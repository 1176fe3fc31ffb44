package bankaccount

import (
	"context"
	"fmt"
	"time"

	"accountease/internal/core/apperror"
	appctx "accountease/internal/core/context"
	"accountease/internal/core/id"
	"accountease/pkg/logger"
)

// Service provides owner-scoped CRUD over bank accounts.
type Service struct {
	accounts Repository
}

func NewService(accounts Repository) *Service {
	return &Service{accounts: accounts}
}

// Input carries the caller-supplied fields of a bank account.
type Input struct {
	BankName      string
	AccountNumber string
	AccountHolder string
	Category      string
	Branch        *string
	SwiftCode     *string
}

// Create registers a new bank account for the caller.
func (s *Service) Create(ctx context.Context, in Input) (*BankAccount, error) {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, apperror.NewNotAuthenticated()
	}

	account := New(ownerID)
	account.BankName = in.BankName
	account.AccountNumber = in.AccountNumber
	account.AccountHolder = in.AccountHolder
	account.Category = in.Category
	account.Branch = in.Branch
	account.SwiftCode = in.SwiftCode

	if err := account.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.accounts.Insert(ctx, account); err != nil {
		return nil, fmt.Errorf("insert bank account: %w", err)
	}

	logger.Info(ctx, "bank account created", "account_id", account.ID, "bank", account.BankName)
	return account, nil
}

// List returns all of the caller's bank accounts.
func (s *Service) List(ctx context.Context) ([]*BankAccount, error) {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, apperror.NewNotAuthenticated()
	}
	return s.accounts.ListByOwner(ctx, ownerID)
}

// Get returns a single bank account owned by the caller.
func (s *Service) Get(ctx context.Context, accountID id.ID) (*BankAccount, error) {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, apperror.NewNotAuthenticated()
	}
	return s.accounts.GetByID(ctx, ownerID, accountID)
}

// Update applies a partial update to a bank account.
func (s *Service) Update(ctx context.Context, accountID id.ID, fields map[string]any) error {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return apperror.NewNotAuthenticated()
	}
	if len(fields) == 0 {
		return apperror.NewInvalidArgument("no fields to update")
	}
	fields["updated_at"] = time.Now().UTC()
	return s.accounts.UpdateFields(ctx, ownerID, accountID, fields)
}

// Delete removes a bank account.
func (s *Service) Delete(ctx context.Context, accountID id.ID) error {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return apperror.NewNotAuthenticated()
	}
	return s.accounts.Delete(ctx, ownerID, accountID)
}
