package inventory

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

type fakeItemRepo struct {
	items   map[id.ID]*Item
	updates []map[string]any
	ops     *[]string
}

func newFakeItemRepo(ops *[]string) *fakeItemRepo {
	return &fakeItemRepo{items: map[id.ID]*Item{}, ops: ops}
}

func (f *fakeItemRepo) Insert(ctx context.Context, item *Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) GetByID(ctx context.Context, ownerID string, itemID id.ID) (*Item, error) {
	item, ok := f.items[itemID]
	if !ok || item.OwnerID != ownerID {
		return nil, apperror.NewNotFound("inventory_item", itemID)
	}
	cp := *item
	return &cp, nil
}

func (f *fakeItemRepo) ListByOwner(ctx context.Context, ownerID string) ([]Item, error) {
	var out []Item
	for _, item := range f.items {
		if item.OwnerID == ownerID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) UpdateFields(ctx context.Context, ownerID string, itemID id.ID, fields map[string]any) error {
	item, ok := f.items[itemID]
	if !ok || item.OwnerID != ownerID {
		return apperror.NewNotFound("inventory_item", itemID)
	}
	if f.ops != nil {
		*f.ops = append(*f.ops, "item.update")
	}
	f.updates = append(f.updates, fields)
	if v, ok := fields["quantity"].(int64); ok {
		item.Quantity = v
	}
	if v, ok := fields["unit_price"].(types.Money); ok {
		item.UnitPrice = v
	}
	if v, ok := fields["total_amount"].(types.Money); ok {
		item.TotalAmount = v
	}
	return nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, ownerID string, itemID id.ID) error {
	item, ok := f.items[itemID]
	if !ok || item.OwnerID != ownerID {
		return apperror.NewNotFound("inventory_item", itemID)
	}
	delete(f.items, itemID)
	return nil
}

type fakeMovementRepo struct {
	movements []Movement
	ops       *[]string
}

func (f *fakeMovementRepo) Insert(ctx context.Context, m *Movement) error {
	if f.ops != nil {
		*f.ops = append(*f.ops, "movement.insert")
	}
	f.movements = append(f.movements, *m)
	return nil
}

func (f *fakeMovementRepo) ListByOwner(ctx context.Context, ownerID string, itemID *id.ID) ([]Movement, error) {
	var out []Movement
	for _, m := range f.movements {
		if m.OwnerID != ownerID {
			continue
		}
		if itemID != nil && m.ItemID != *itemID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func ownerCtx() context.Context {
	return appctx.WithUser(context.Background(), &appctx.UserContext{UserID: "owner-1"})
}

func newTestService() (*Service, *fakeItemRepo, *fakeMovementRepo, *[]string) {
	ops := &[]string{}
	items := newFakeItemRepo(ops)
	movements := &fakeMovementRepo{ops: ops}
	return NewService(items, movements, nil, &fakeTxRunner{}), items, movements, ops
}

func TestCreateItem_SnapshotsInitialState(t *testing.T) {
	svc, _, _, _ := newTestService()

	item, err := svc.CreateItem(ownerCtx(), CreateItemInput{
		Name:      "Flour 1kg",
		SKU:       "FLR-001",
		Category:  "Baking",
		Quantity:  40,
		UnitPrice: "250.50",
		Date:      "2026-01-10",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(40), item.InitialQuantity)
	assert.Equal(t, int64(40), item.Quantity)
	assert.True(t, item.InitialUnitPrice.Equal(types.MustMoney("250.50")))
	assert.True(t, item.TotalAmount.Equal(types.MustMoney("10020")),
		"total must equal quantity * unit price, got %s", item.TotalAmount)
}

func TestCreateItem_RequiresAuthentication(t *testing.T) {
	svc, items, _, _ := newTestService()

	_, err := svc.CreateItem(context.Background(), CreateItemInput{Name: "X", UnitPrice: "1"})
	assert.True(t, apperror.IsNotAuthenticated(err))
	assert.Empty(t, items.items)
}

func TestCreateItem_MalformedUnitPrice(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateItem(ownerCtx(), CreateItemInput{Name: "X", UnitPrice: "abc"})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestRecordMovement_InThenOutRestoresQuantity(t *testing.T) {
	svc, items, _, _ := newTestService()
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{
		Name: "Sugar", SKU: "SGR", Quantity: 10, UnitPrice: "100",
	})
	require.NoError(t, err)

	_, err = svc.RecordMovement(ctx, MovementInput{ItemID: item.ID, Type: DirectionIn, Quantity: 5, Date: "2026-02-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(15), items.items[item.ID].Quantity)
	assert.True(t, items.items[item.ID].TotalAmount.Equal(types.MustMoney("1500")))

	_, err = svc.RecordMovement(ctx, MovementInput{ItemID: item.ID, Type: DirectionOut, Quantity: 5, Date: "2026-02-02"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), items.items[item.ID].Quantity)
	assert.True(t, items.items[item.ID].TotalAmount.Equal(types.MustMoney("1000")))
}

func TestRecordMovement_RejectsNonPositiveQuantity(t *testing.T) {
	svc, items, movements, _ := newTestService()
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Tea", Quantity: 3, UnitPrice: "50"})
	require.NoError(t, err)

	for _, qty := range []int64{0, -4} {
		_, err := svc.RecordMovement(ctx, MovementInput{ItemID: item.ID, Type: DirectionOut, Quantity: qty})
		assert.True(t, apperror.IsInvalidArgument(err), "quantity %d must be rejected", qty)
	}
	assert.Empty(t, movements.movements)
	assert.Empty(t, items.updates)
}

func TestRecordMovement_RejectsUnknownDirection(t *testing.T) {
	svc, _, movements, _ := newTestService()
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Tea", Quantity: 3, UnitPrice: "50"})
	require.NoError(t, err)

	_, err = svc.RecordMovement(ctx, MovementInput{ItemID: item.ID, Type: "sideways", Quantity: 1})
	assert.True(t, apperror.IsInvalidArgument(err))
	assert.Empty(t, movements.movements)
}

func TestRecordMovement_LedgerWriteComesFirst(t *testing.T) {
	svc, _, _, ops := newTestService()
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Rice", Quantity: 8, UnitPrice: "200"})
	require.NoError(t, err)

	_, err = svc.RecordMovement(ctx, MovementInput{ItemID: item.ID, Type: DirectionIn, Quantity: 2})
	require.NoError(t, err)

	require.Equal(t, []string{"movement.insert", "item.update"}, *ops)
}

func TestRecordMovement_AllowsNegativeResult(t *testing.T) {
	svc, items, _, _ := newTestService()
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Salt", Quantity: 2, UnitPrice: "30"})
	require.NoError(t, err)

	// Oversell is recorded as-is; the cached quantity goes negative.
	_, err = svc.RecordMovement(ctx, MovementInput{ItemID: item.ID, Type: DirectionOut, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(-3), items.items[item.ID].Quantity)
}

func TestUpdateItem_DescriptionOnlyLeavesTotalsUntouched(t *testing.T) {
	svc, items, _, _ := newTestService()
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Oil", Quantity: 6, UnitPrice: "900"})
	require.NoError(t, err)

	desc := "sunflower, 1L bottles"
	require.NoError(t, svc.UpdateItem(ctx, item.ID, UpdateItemInput{Description: &desc}))

	require.Len(t, items.updates, 1)
	fields := items.updates[0]
	assert.NotContains(t, fields, "total_amount")
	assert.NotContains(t, fields, "quantity")
	assert.NotContains(t, fields, "unit_price")
	assert.True(t, items.items[item.ID].TotalAmount.Equal(types.MustMoney("5400")))
}

func TestUpdateItem_PriceChangeRecomputesTotal(t *testing.T) {
	svc, items, _, _ := newTestService()
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Oil", Quantity: 6, UnitPrice: "900"})
	require.NoError(t, err)

	price := "1000"
	require.NoError(t, svc.UpdateItem(ctx, item.ID, UpdateItemInput{UnitPrice: &price}))

	require.Len(t, items.updates, 1)
	total, ok := items.updates[0]["total_amount"].(types.Money)
	require.True(t, ok)
	assert.True(t, total.Equal(types.MustMoney("6000")))
	// Initial snapshots never change.
	assert.True(t, items.items[item.ID].InitialUnitPrice.Equal(types.MustMoney("900")))
	assert.Equal(t, int64(6), items.items[item.ID].InitialQuantity)
}

func TestUpdateItem_QuantityChangeRecomputesTotal(t *testing.T) {
	svc, items, _, _ := newTestService()
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Oil", Quantity: 6, UnitPrice: "900"})
	require.NoError(t, err)

	qty := int64(10)
	require.NoError(t, svc.UpdateItem(ctx, item.ID, UpdateItemInput{Quantity: &qty}))

	require.Len(t, items.updates, 1)
	total, ok := items.updates[0]["total_amount"].(types.Money)
	require.True(t, ok)
	assert.True(t, total.Equal(types.MustMoney("9000")))
}

func TestUpdateItem_EmptyPatchRejected(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Oil", Quantity: 1, UnitPrice: "10"})
	require.NoError(t, err)

	err = svc.UpdateItem(ctx, item.ID, UpdateItemInput{})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestReconcile_RepairsDrift(t *testing.T) {
	svc, items, movements, _ := newTestService()
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Beans", Quantity: 10, UnitPrice: "120"})
	require.NoError(t, err)

	_, err = svc.RecordMovement(ctx, MovementInput{ItemID: item.ID, Type: DirectionIn, Quantity: 4})
	require.NoError(t, err)
	_, err = svc.RecordMovement(ctx, MovementInput{ItemID: item.ID, Type: DirectionOut, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, movements.movements, 2)

	// Simulate a lost item update after a durable ledger write.
	items.items[item.ID].Quantity = 7

	fixed, err := svc.Reconcile(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), fixed.Quantity)
	assert.True(t, fixed.TotalAmount.Equal(types.MustMoney("1440")))
	assert.Equal(t, int64(12), items.items[item.ID].Quantity)
}

func TestReconcile_NoopWhenConsistent(t *testing.T) {
	svc, items, _, _ := newTestService()
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Beans", Quantity: 10, UnitPrice: "120"})
	require.NoError(t, err)

	before := len(items.updates)
	got, err := svc.Reconcile(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Quantity)
	assert.Len(t, items.updates, before, "a consistent item must not be rewritten")
}

func TestReconcile_RunsInsideTransaction(t *testing.T) {
	ops := &[]string{}
	items := newFakeItemRepo(ops)
	movements := &fakeMovementRepo{ops: ops}
	tx := &fakeTxRunner{}
	svc := NewService(items, movements, nil, tx)
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Beans", Quantity: 10, UnitPrice: "120"})
	require.NoError(t, err)
	_, err = svc.RecordMovement(ctx, MovementInput{ItemID: item.ID, Type: DirectionIn, Quantity: 3})
	require.NoError(t, err)

	items.items[item.ID].Quantity = 5

	fixed, err := svc.Reconcile(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls, "reconcile must run through the transaction runner")
	assert.Equal(t, int64(13), fixed.Quantity)
}

func TestReconcile_WorksWithoutTransactionRunner(t *testing.T) {
	ops := &[]string{}
	items := newFakeItemRepo(ops)
	movements := &fakeMovementRepo{ops: ops}
	svc := NewService(items, movements, nil, nil)
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Beans", Quantity: 4, UnitPrice: "10"})
	require.NoError(t, err)

	got, err := svc.Reconcile(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Quantity)
}

func TestDeleteItem_KeepsMovementHistory(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := ownerCtx()

	item, err := svc.CreateItem(ctx, CreateItemInput{Name: "Beans", Quantity: 10, UnitPrice: "120"})
	require.NoError(t, err)
	_, err = svc.RecordMovement(ctx, MovementInput{ItemID: item.ID, Type: DirectionOut, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(ctx, item.ID))

	_, err = svc.GetItem(ctx, item.ID)
	assert.True(t, apperror.IsNotFound(err))
	history, err := svc.ListMovements(ctx, &item.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
