package records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountease/internal/core/apperror"
	appctx "accountease/internal/core/context"
	"accountease/internal/core/id"
	"accountease/internal/core/types"
)

type fakeTransactionRepo struct {
	transactions map[id.ID]*Transaction
	updates      []map[string]any
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: map[id.ID]*Transaction{}}
}

func (f *fakeTransactionRepo) Insert(ctx context.Context, tx *Transaction) error {
	f.transactions[tx.ID] = tx
	return nil
}

func (f *fakeTransactionRepo) GetByID(ctx context.Context, ownerID string, txID id.ID) (*Transaction, error) {
	tx, ok := f.transactions[txID]
	if !ok || tx.OwnerID != ownerID {
		return nil, apperror.NewNotFound("transaction", txID)
	}
	return tx, nil
}

func (f *fakeTransactionRepo) ListByOwner(ctx context.Context, ownerID string, typ TransactionType) ([]Transaction, error) {
	var out []Transaction
	for _, tx := range f.transactions {
		if tx.OwnerID != ownerID {
			continue
		}
		if typ != "" && tx.Type != typ {
			continue
		}
		out = append(out, *tx)
	}
	return out, nil
}

func (f *fakeTransactionRepo) UpdateFields(ctx context.Context, ownerID string, txID id.ID, fields map[string]any) error {
	tx, ok := f.transactions[txID]
	if !ok || tx.OwnerID != ownerID {
		return apperror.NewNotFound("transaction", txID)
	}
	f.updates = append(f.updates, fields)
	return nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, ownerID string, txID id.ID) error {
	tx, ok := f.transactions[txID]
	if !ok || tx.OwnerID != ownerID {
		return apperror.NewNotFound("transaction", txID)
	}
	delete(f.transactions, txID)
	return nil
}

type fakePurchaseRepo struct {
	purchases map[id.ID]*Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: map[id.ID]*Purchase{}}
}

func (f *fakePurchaseRepo) Insert(ctx context.Context, p *Purchase) error {
	f.purchases[p.ID] = p
	return nil
}

func (f *fakePurchaseRepo) GetByID(ctx context.Context, ownerID string, purchaseID id.ID) (*Purchase, error) {
	p, ok := f.purchases[purchaseID]
	if !ok || p.OwnerID != ownerID {
		return nil, apperror.NewNotFound("purchase", purchaseID)
	}
	return p, nil
}

func (f *fakePurchaseRepo) ListByOwner(ctx context.Context, ownerID string) ([]Purchase, error) {
	var out []Purchase
	for _, p := range f.purchases {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePurchaseRepo) UpdateFields(ctx context.Context, ownerID string, purchaseID id.ID, fields map[string]any) error {
	if p, ok := f.purchases[purchaseID]; !ok || p.OwnerID != ownerID {
		return apperror.NewNotFound("purchase", purchaseID)
	}
	return nil
}

func (f *fakePurchaseRepo) Delete(ctx context.Context, ownerID string, purchaseID id.ID) error {
	p, ok := f.purchases[purchaseID]
	if !ok || p.OwnerID != ownerID {
		return apperror.NewNotFound("purchase", purchaseID)
	}
	delete(f.purchases, purchaseID)
	return nil
}

func ownerCtx(ownerID string) context.Context {
	return appctx.WithUser(context.Background(), &appctx.UserContext{UserID: ownerID})
}

func newTestService() (*Service, *fakeTransactionRepo, *fakePurchaseRepo) {
	transactions := newFakeTransactionRepo()
	purchases := newFakePurchaseRepo()
	return NewService(transactions, purchases, nil), transactions, purchases
}

func TestAddTransaction_RequiresAuthentication(t *testing.T) {
	svc, transactions, _ := newTestService()

	_, err := svc.AddTransaction(context.Background(), TypeSale, TransactionInput{
		Date: "2026-02-01", Amount: "100",
	})
	assert.True(t, apperror.IsNotAuthenticated(err))
	assert.Empty(t, transactions.transactions)
}

func TestAddTransaction_Defaults(t *testing.T) {
	svc, _, _ := newTestService()

	tx, err := svc.AddTransaction(ownerCtx("owner-1"), TypeSale, TransactionInput{
		Date:        "2026-02-01",
		Description: "Walk-in sale",
		Amount:      "1250.00",
	})
	require.NoError(t, err)

	assert.Equal(t, TypeSale, tx.Type)
	assert.Equal(t, StatusCompleted, tx.Status)
	assert.Equal(t, types.CurrencyCode, tx.Currency)
	assert.Equal(t, "owner-1", tx.OwnerID)
	assert.True(t, tx.Amount.Equal(types.MustMoney("1250")))
}

func TestAddTransaction_MalformedAmount(t *testing.T) {
	svc, transactions, _ := newTestService()

	_, err := svc.AddTransaction(ownerCtx("owner-1"), TypeExpense, TransactionInput{
		Date: "2026-02-01", Amount: "12,50",
	})
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidArgument, appErr.Code)
	assert.Equal(t, "amount", appErr.Details["field"])
	assert.Empty(t, transactions.transactions)
}

func TestAddTransaction_RequiresDate(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.AddTransaction(ownerCtx("owner-1"), TypeSale, TransactionInput{Amount: "10"})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestAddTransaction_RejectsNegativeAmount(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.AddTransaction(ownerCtx("owner-1"), TypeSale, TransactionInput{
		Date: "2026-02-01", Amount: "-5",
	})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestListTransactions_FiltersByType(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := ownerCtx("owner-1")

	_, err := svc.AddTransaction(ctx, TypeSale, TransactionInput{Date: "2026-02-01", Amount: "100"})
	require.NoError(t, err)
	_, err = svc.AddTransaction(ctx, TypeExpense, TransactionInput{Date: "2026-02-02", Amount: "40"})
	require.NoError(t, err)

	sales, err := svc.ListTransactions(ctx, TypeSale)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, TypeSale, sales[0].Type)

	all, err := svc.ListTransactions(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTransactions_OwnerIsolation(t *testing.T) {
	svc, _, _ := newTestService()

	tx, err := svc.AddTransaction(ownerCtx("owner-1"), TypeSale, TransactionInput{
		Date: "2026-02-01", Amount: "100",
	})
	require.NoError(t, err)

	_, err = svc.GetTransaction(ownerCtx("owner-2"), tx.ID)
	assert.True(t, apperror.IsNotFound(err))

	err = svc.DeleteTransaction(ownerCtx("owner-2"), tx.ID)
	assert.True(t, apperror.IsNotFound(err))

	got, err := svc.GetTransaction(ownerCtx("owner-1"), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.ID, got.ID)
}

func TestUpdateTransaction_EmptyPatchRejected(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := ownerCtx("owner-1")

	tx, err := svc.AddTransaction(ctx, TypeSale, TransactionInput{Date: "2026-02-01", Amount: "100"})
	require.NoError(t, err)

	err = svc.UpdateTransaction(ctx, tx.ID, map[string]any{})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestUpdateTransaction_StampsUpdatedAt(t *testing.T) {
	svc, transactions, _ := newTestService()
	ctx := ownerCtx("owner-1")

	tx, err := svc.AddTransaction(ctx, TypeSale, TransactionInput{Date: "2026-02-01", Amount: "100"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateTransaction(ctx, tx.ID, map[string]any{"description": "edited"}))
	require.Len(t, transactions.updates, 1)
	assert.Contains(t, transactions.updates[0], "updated_at")
}

func TestAddPurchase_Validation(t *testing.T) {
	svc, _, purchases := newTestService()
	ctx := ownerCtx("owner-1")

	_, err := svc.AddPurchase(ctx, PurchaseInput{SupplierName: "Acme", Amount: "100"})
	assert.True(t, apperror.IsInvalidArgument(err), "purchase date is required")

	_, err = svc.AddPurchase(ctx, PurchaseInput{PurchaseDate: "2026-02-01", Amount: "100"})
	assert.True(t, apperror.IsInvalidArgument(err), "supplier name is required")

	assert.Empty(t, purchases.purchases)
}

func TestAddPurchase_TracksSettlement(t *testing.T) {
	svc, _, _ := newTestService()

	p, err := svc.AddPurchase(ownerCtx("owner-1"), PurchaseInput{
		PurchaseDate:  "2026-02-01",
		SupplierName:  "Acme Mills",
		Amount:        "800",
		PaymentAmount: "300",
		PaymentMethod: PaymentBankTransfer,
	})
	require.NoError(t, err)

	assert.True(t, p.Outstanding().Equal(types.MustMoney("500")))
	assert.False(t, p.IsPaid())
}

func TestDeletePurchase(t *testing.T) {
	svc, _, purchases := newTestService()
	ctx := ownerCtx("owner-1")

	p, err := svc.AddPurchase(ctx, PurchaseInput{
		PurchaseDate: "2026-02-01", SupplierName: "Acme", Amount: "100",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePurchase(ctx, p.ID))
	assert.Empty(t, purchases.purchases)

	err = svc.DeletePurchase(ctx, p.ID)
	assert.True(t, apperror.IsNotFound(err))
}
