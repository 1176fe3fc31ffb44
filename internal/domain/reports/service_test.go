package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountease/internal/core/apperror"
	appctx "accountease/internal/core/context"
	"accountease/internal/core/types"
	"accountease/internal/domain/inventory"
	"accountease/internal/domain/records"
)

type fakeSource struct {
	transactions []records.Transaction
	purchases    []records.Purchase
	items        []inventory.Item

	purchasesErr error
}

func (f *fakeSource) Transactions(ctx context.Context, ownerID string, typ records.TransactionType) ([]records.Transaction, error) {
	if typ == "" {
		return f.transactions, nil
	}
	var out []records.Transaction
	for _, tx := range f.transactions {
		if tx.Type == typ {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeSource) Purchases(ctx context.Context, ownerID string) ([]records.Purchase, error) {
	if f.purchasesErr != nil {
		return nil, f.purchasesErr
	}
	return f.purchases, nil
}

func (f *fakeSource) Items(ctx context.Context, ownerID string) ([]inventory.Item, error) {
	return f.items, nil
}

func ownerCtx() context.Context {
	return appctx.WithUser(context.Background(), &appctx.UserContext{UserID: "owner-1"})
}

var fixedNow = time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

func newTestService(source Source) *Service {
	svc := NewService(source, nil, 0)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func testFilter() Filter {
	return Filter{
		Timeframe: TimeframeCustom,
		Start:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func makeTransaction(typ records.TransactionType, date, amount string) records.Transaction {
	tx := records.NewTransaction("owner-1", typ)
	tx.Date = date
	tx.Description = string(typ) + " of " + amount
	if m, err := types.NewMoneyFromString(amount); err == nil {
		tx.Amount = m
	}
	return *tx
}

func TestGenerate_RequiresAuthentication(t *testing.T) {
	svc := newTestService(&fakeSource{})

	_, err := svc.Generate(context.Background(), TypeSales, testFilter())
	assert.True(t, apperror.IsNotAuthenticated(err))
}

func TestGenerate_RejectsUnknownType(t *testing.T) {
	svc := newTestService(&fakeSource{})

	_, err := svc.Generate(ownerCtx(), Type("weather"), testFilter())
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidReportType, appErr.Code)
}

func TestGenerate_EmptySourceYieldsZeroSummary(t *testing.T) {
	svc := newTestService(&fakeSource{})

	report, err := svc.Generate(ownerCtx(), TypeSales, testFilter())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Summary.Count)
	assert.True(t, report.Summary.TotalAmount.IsZero())
	assert.True(t, report.Summary.AverageAmount.IsZero())
	assert.True(t, report.Summary.PreviousPeriodChange.IsZero())
	assert.Empty(t, report.Data)
}

func TestGenerate_SalesSummaryAndOrdering(t *testing.T) {
	source := &fakeSource{transactions: []records.Transaction{
		makeTransaction(records.TypeSale, "2026-02-10", "100"),
		makeTransaction(records.TypeSale, "2026-02-20", "300"),
		makeTransaction(records.TypeSale, "2026-02-15", "200"),
	}}
	svc := newTestService(source)

	report, err := svc.Generate(ownerCtx(), TypeSales, testFilter())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.Count)
	assert.True(t, report.Summary.TotalAmount.Equal(types.MustMoney("600")))
	assert.True(t, report.Summary.AverageAmount.Equal(types.MustMoney("200")))
	assert.Equal(t, "LKR 600.00", report.Summary.FormattedTotal)

	require.Len(t, report.Data, 3)
	assert.True(t, report.Data[0].Value.Equal(types.MustMoney("300")), "points are ordered newest first")
	assert.True(t, report.Data[1].Value.Equal(types.MustMoney("200")))
	assert.True(t, report.Data[2].Value.Equal(types.MustMoney("100")))
}

func TestGenerate_SalesStatusUsesDisplayCasing(t *testing.T) {
	completed := makeTransaction(records.TypeSale, "2026-02-10", "100")
	completed.Status = records.StatusCompleted
	pending := makeTransaction(records.TypeSale, "2026-02-12", "200")
	pending.Status = records.StatusPending
	unset := makeTransaction(records.TypeSale, "2026-02-14", "300")
	unset.Status = ""

	svc := newTestService(&fakeSource{transactions: []records.Transaction{completed, pending, unset}})

	report, err := svc.Generate(ownerCtx(), TypeSales, testFilter())
	require.NoError(t, err)

	require.Len(t, report.Data, 3)
	assert.Equal(t, "Completed", report.Data[0].Details.Status, "missing status reads as completed")
	assert.Equal(t, "Pending", report.Data[1].Details.Status)
	assert.Equal(t, "Completed", report.Data[2].Details.Status)
}

func TestGenerate_ProfitLossSignsExpenses(t *testing.T) {
	source := &fakeSource{transactions: []records.Transaction{
		makeTransaction(records.TypeSale, "2026-02-10", "1000"),
		makeTransaction(records.TypeExpense, "2026-02-11", "300"),
	}}
	svc := newTestService(source)

	report, err := svc.Generate(ownerCtx(), TypeProfitLoss, testFilter())
	require.NoError(t, err)

	assert.True(t, report.Summary.TotalAmount.Equal(types.MustMoney("700")))
	require.Len(t, report.Data, 2)
	// Newest first: the expense point carries a negative value.
	assert.True(t, report.Data[0].Value.Equal(types.MustMoney("-300")))
	assert.Equal(t, "Expense", report.Data[0].Details.Status)
	assert.True(t, report.Data[1].Value.Equal(types.MustMoney("1000")))
	assert.Equal(t, "Income", report.Data[1].Details.Status)
}

func TestGenerate_PreviousPeriodChange(t *testing.T) {
	// Filter is Feb 1 - Mar 1; the preceding window of equal length covers
	// Jan 4 - Feb 1, so the Jan 10 sale lands in the previous period.
	source := &fakeSource{transactions: []records.Transaction{
		makeTransaction(records.TypeSale, "2026-01-10", "100"),
		makeTransaction(records.TypeSale, "2026-02-10", "200"),
	}}
	svc := newTestService(source)

	report, err := svc.Generate(ownerCtx(), TypeSales, testFilter())
	require.NoError(t, err)

	// Total covers the entire fetched set: 300. Previous total: 100.
	assert.True(t, report.Summary.TotalAmount.Equal(types.MustMoney("300")))
	assert.True(t, report.Summary.PreviousPeriodChange.Equal(types.MustMoney("200")),
		"(300-100)/100 * 100, got %s", report.Summary.PreviousPeriodChange)
}

func TestGenerate_ChangeIsZeroWithoutPreviousActivity(t *testing.T) {
	source := &fakeSource{transactions: []records.Transaction{
		makeTransaction(records.TypeSale, "2026-02-10", "200"),
	}}
	svc := newTestService(source)

	report, err := svc.Generate(ownerCtx(), TypeSales, testFilter())
	require.NoError(t, err)
	assert.True(t, report.Summary.PreviousPeriodChange.IsZero())
}

func TestGenerate_PurchaseSettlementStatus(t *testing.T) {
	paid := records.NewPurchase("owner-1")
	paid.PurchaseDate = "2026-02-05"
	paid.SupplierName = "Acme Mills"
	paid.Amount = types.MustMoney("500")
	paid.PaymentAmount = types.MustMoney("500")

	pending := records.NewPurchase("owner-1")
	pending.PurchaseDate = "2026-02-06"
	pending.SupplierName = "Lanka Traders"
	pending.Amount = types.MustMoney("800")
	pending.PaymentAmount = types.MustMoney("300")

	svc := newTestService(&fakeSource{purchases: []records.Purchase{*paid, *pending}})

	report, err := svc.Generate(ownerCtx(), TypePurchases, testFilter())
	require.NoError(t, err)

	require.Len(t, report.Data, 2)
	assert.Equal(t, "Pending", report.Data[0].Details.Status)
	assert.Equal(t, "Paid", report.Data[1].Details.Status)
	assert.True(t, report.Summary.TotalAmount.Equal(types.MustMoney("1300")))
}

func TestGenerate_InventoryReflectsCurrentState(t *testing.T) {
	item := inventory.NewItem("owner-1", "Flour 1kg", "FLR-001", "Baking", 20, types.MustMoney("250"))
	item.Quantity = 12
	item.Recompute()
	item.Date = "2026-02-14"
	item.UpdatedAt = time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)

	svc := newTestService(&fakeSource{items: []inventory.Item{*item}})

	report, err := svc.Generate(ownerCtx(), TypeInventory, testFilter())
	require.NoError(t, err)

	require.Len(t, report.Data, 1)
	point := report.Data[0]
	assert.True(t, point.Value.Equal(types.MustMoney("3000")), "value is the cached total amount")
	assert.Equal(t, item.UpdatedAt, point.Date)
	require.NotNil(t, point.Details.InitialStock)
	require.NotNil(t, point.Details.CurrentStock)
	assert.Equal(t, int64(20), *point.Details.InitialStock)
	assert.Equal(t, int64(12), *point.Details.CurrentStock)
	assert.Equal(t, "In Stock", point.Details.Status)
}

func TestGenerate_MalformedDateFallsBackToCreatedAt(t *testing.T) {
	tx := makeTransaction(records.TypeSale, "not-a-date", "50")
	tx.CreatedAt = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeSource{transactions: []records.Transaction{tx}})

	report, err := svc.Generate(ownerCtx(), TypeSales, testFilter())
	require.NoError(t, err)

	require.Len(t, report.Data, 1)
	assert.Equal(t, tx.CreatedAt, report.Data[0].Date)
}

func TestGenerate_CachesByOwnerTypeAndRange(t *testing.T) {
	source := &fakeSource{transactions: []records.Transaction{
		makeTransaction(records.TypeSale, "2026-02-10", "100"),
	}}
	svc := NewService(source, nil, time.Minute)
	svc.now = func() time.Time { return fixedNow }

	first, err := svc.Generate(ownerCtx(), TypeSales, testFilter())
	require.NoError(t, err)

	// New source data must not show up until the cache entry expires.
	source.transactions = append(source.transactions,
		makeTransaction(records.TypeSale, "2026-02-11", "999"))

	second, err := svc.Generate(ownerCtx(), TypeSales, testFilter())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, second.Summary.Count)
}

func TestGenerateBatch_IsolatesFailures(t *testing.T) {
	source := &fakeSource{
		transactions: []records.Transaction{
			makeTransaction(records.TypeSale, "2026-02-10", "100"),
		},
		purchasesErr: errors.New("store unavailable"),
	}
	svc := newTestService(source)

	sub, cancel := svc.Broadcaster().Subscribe()
	defer cancel()

	batch, err := svc.GenerateBatch(ownerCtx(), testFilter())
	require.NoError(t, err)

	assert.Len(t, batch.Reports, len(AllTypes)-1)
	require.Contains(t, batch.Errors, TypePurchases)
	assert.ErrorContains(t, batch.Errors[TypePurchases], "store unavailable")

	select {
	case published := <-sub:
		assert.Equal(t, len(batch.Reports), len(published.Reports))
	default:
		t.Fatal("batch was not published to subscribers")
	}
}

func TestGenerateBatch_RequiresAuthentication(t *testing.T) {
	svc := newTestService(&fakeSource{})

	_, err := svc.GenerateBatch(context.Background(), testFilter())
	assert.True(t, apperror.IsNotAuthenticated(err))
}
