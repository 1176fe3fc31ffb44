package inventory

import (
	"context"
	"fmt"
	"time"

	"accountease/internal/core/apperror"
	appctx "accountease/internal/core/context"
	"accountease/internal/core/entity"
	"accountease/internal/core/id"
	"accountease/internal/core/types"
	"accountease/internal/domain/audit"
	"accountease/pkg/logger"
)

// TxRunner executes fn atomically against the record store. The active
// transaction travels in the context fn receives.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service keeps the cached Quantity/TotalAmount on items consistent with the
// movement ledger and with direct item edits.
type Service struct {
	items     ItemRepository
	movements MovementRepository
	auditor   audit.Recorder
	tx        TxRunner
}

// NewService creates a new inventory ledger service. tx may be nil, in
// which case reconciliation runs unwrapped.
func NewService(items ItemRepository, movements MovementRepository, auditor audit.Recorder, tx TxRunner) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{
		items:     items,
		movements: movements,
		auditor:   auditor,
		tx:        tx,
	}
}

func (s *Service) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx == nil {
		return fn(ctx)
	}
	return s.tx.RunInTransaction(ctx, fn)
}

func ownerFromContext(ctx context.Context) (string, error) {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return "", apperror.NewNotAuthenticated()
	}
	return ownerID, nil
}

// CreateItemInput carries the caller-supplied fields of a new stock item.
type CreateItemInput struct {
	Name        string
	SKU         string
	Description *string
	Category    string
	Quantity    int64
	UnitPrice   string
	Date        string
}

// CreateItem stores a new item, snapshotting initial quantity and unit price.
func (s *Service) CreateItem(ctx context.Context, in CreateItemInput) (*Item, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	unitPrice, err := parsePrice(in.UnitPrice)
	if err != nil {
		return nil, err
	}

	item := NewItem(ownerID, in.Name, in.SKU, in.Category, in.Quantity, unitPrice)
	item.Description = in.Description
	item.Date = in.Date

	if err := item.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.items.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	if err := s.auditor.Record(ctx, "inventory_item", item.ID, audit.ActionCreate, item); err != nil {
		logger.Warn(ctx, "audit record failed", "entity", "inventory_item", "error", err)
	}

	logger.Info(ctx, "inventory item created",
		"item_id", item.ID,
		"sku", item.SKU,
		"quantity", item.Quantity,
	)
	return item, nil
}

// GetItem returns a single item owned by the caller.
func (s *Service) GetItem(ctx context.Context, itemID id.ID) (*Item, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.items.GetByID(ctx, ownerID, itemID)
}

// ListItems returns all of the owner's items.
func (s *Service) ListItems(ctx context.Context) ([]Item, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.items.ListByOwner(ctx, ownerID)
}

// UpdateItemInput is a partial item update. Nil fields are left untouched.
type UpdateItemInput struct {
	Name        *string
	SKU         *string
	Description *string
	Category    *string
	Quantity    *int64
	UnitPrice   *string
	Date        *string
}

// touchesDerived reports whether the patch affects the TotalAmount inputs.
func (in UpdateItemInput) touchesDerived() bool {
	return in.Quantity != nil || in.UnitPrice != nil
}

// UpdateItem applies a partial update. When the patch includes quantity or
// unit price, the missing half of the pair is read from the stored item and
// TotalAmount is recomputed; otherwise TotalAmount is left untouched, so an
// edit of, say, only the description can never corrupt it.
func (s *Service) UpdateItem(ctx context.Context, itemID id.ID, in UpdateItemInput) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.SKU != nil {
		fields["sku"] = *in.SKU
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Date != nil {
		fields["date"] = *in.Date
	}

	if in.touchesDerived() {
		current, err := s.items.GetByID(ctx, ownerID, itemID)
		if err != nil {
			return err
		}

		newQuantity := current.Quantity
		if in.Quantity != nil {
			newQuantity = *in.Quantity
			fields["quantity"] = newQuantity
		}

		newUnitPrice := current.UnitPrice
		if in.UnitPrice != nil {
			newUnitPrice, err = parsePrice(*in.UnitPrice)
			if err != nil {
				return err
			}
			fields["unit_price"] = newUnitPrice
		}

		fields["total_amount"] = totalAmount(newQuantity, newUnitPrice)
	}

	if len(fields) == 0 {
		return apperror.NewInvalidArgument("no fields to update")
	}
	fields["updated_at"] = time.Now().UTC()

	if err := s.items.UpdateFields(ctx, ownerID, itemID, fields); err != nil {
		return err
	}

	if err := s.auditor.Record(ctx, "inventory_item", itemID, audit.ActionUpdate, fields); err != nil {
		logger.Warn(ctx, "audit record failed", "entity", "inventory_item", "error", err)
	}
	return nil
}

// DeleteItem removes an item. Deletion is immediate and terminal; movement
// records referencing the item are deliberately not cascade-deleted.
func (s *Service) DeleteItem(ctx context.Context, itemID id.ID) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, ownerID, itemID); err != nil {
		return err
	}

	if err := s.auditor.Record(ctx, "inventory_item", itemID, audit.ActionDelete, nil); err != nil {
		logger.Warn(ctx, "audit record failed", "entity", "inventory_item", "error", err)
	}
	return nil
}

// MovementInput carries the caller-supplied fields of a stock movement.
type MovementInput struct {
	ItemID    id.ID
	Type      Direction
	Quantity  int64
	Date      string
	Reference *string
	Notes     *string
}

// RecordMovement appends a ledger entry and refreshes the item's cached
// quantity and total amount. The movement record is written first: the
// ledger is the source of truth and the item can be rebuilt from it if the
// second write is lost. The two writes are not atomic; that window is an
// accepted, documented inconsistency, not a silent corruption.
func (s *Service) RecordMovement(ctx context.Context, in MovementInput) (*Movement, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if in.Quantity <= 0 {
		return nil, apperror.NewInvalidArgument("quantity must be positive").
			WithDetail("field", "quantity").
			WithDetail("value", in.Quantity)
	}
	if in.Type != DirectionIn && in.Type != DirectionOut {
		return nil, apperror.NewInvalidArgument("invalid movement type").
			WithDetail("field", "type").
			WithDetail("value", string(in.Type))
	}

	item, err := s.items.GetByID(ctx, ownerID, in.ItemID)
	if err != nil {
		return nil, err
	}

	m := &Movement{
		Record:    entity.NewRecord(ownerID),
		ItemID:    in.ItemID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Date:      in.Date,
		Reference: in.Reference,
		Notes:     in.Notes,
	}

	if err := s.movements.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("insert movement: %w", err)
	}

	newQuantity := item.Quantity + m.SignedQuantity()
	err = s.items.UpdateFields(ctx, ownerID, in.ItemID, map[string]any{
		"quantity":     newQuantity,
		"total_amount": totalAmount(newQuantity, item.UnitPrice),
		"updated_at":   time.Now().UTC(),
	})
	if err != nil {
		// Ledger entry is already durable; the cached item can be repaired
		// with Reconcile.
		logger.Error(ctx, "item update after movement failed",
			"item_id", in.ItemID,
			"movement_id", m.ID,
			"error", err,
		)
		return nil, err
	}

	logger.Info(ctx, "stock movement recorded",
		"item_id", in.ItemID,
		"movement_id", m.ID,
		"type", in.Type,
		"quantity", in.Quantity,
		"new_quantity", newQuantity,
	)
	return m, nil
}

// ListMovements returns the owner's movement history, optionally for one item.
func (s *Service) ListMovements(ctx context.Context, itemID *id.ID) ([]Movement, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.movements.ListByOwner(ctx, ownerID, itemID)
}

// Reconcile rebuilds an item's cached quantity and total amount from its
// movement history: initial quantity plus the signed sum of all movements.
// Used to repair the window between a durable movement write and a lost
// item update. The read-recompute-write runs in one transaction so a
// movement recorded mid-repair cannot be silently overwritten.
func (s *Service) Reconcile(ctx context.Context, itemID id.ID) (*Item, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var item *Item
	err = s.runInTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.items.GetByID(ctx, ownerID, itemID)
		if err != nil {
			return err
		}

		history, err := s.movements.ListByOwner(ctx, ownerID, &itemID)
		if err != nil {
			return fmt.Errorf("list movements: %w", err)
		}

		quantity := item.InitialQuantity
		for _, m := range history {
			quantity += m.SignedQuantity()
		}

		if quantity == item.Quantity {
			return nil
		}

		logger.Warn(ctx, "reconcile found drift",
			"item_id", itemID,
			"cached_quantity", item.Quantity,
			"ledger_quantity", quantity,
		)

		item.Quantity = quantity
		item.Recompute()
		item.Touch()

		return s.items.UpdateFields(ctx, ownerID, itemID, map[string]any{
			"quantity":     item.Quantity,
			"total_amount": item.TotalAmount,
			"updated_at":   item.UpdatedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func parsePrice(s string) (types.Money, error) {
	if s == "" {
		return types.Zero(), nil
	}
	m, err := types.NewMoneyFromString(s)
	if err != nil {
		return types.Zero(), apperror.NewInvalidArgument("malformed unit price").
			WithDetail("field", "unitPrice").
			WithDetail("value", s)
	}
	return m, nil
}
