package reports

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"accountease/internal/core/apperror"
	appctx "accountease/internal/core/context"
	"accountease/internal/core/types"
	"accountease/internal/domain/inventory"
	"accountease/internal/domain/records"
	"accountease/pkg/logger"
)

var tracer = otel.Tracer("accountease/reports")

// Source is the tagged-union read interface over the record store. Sales and
// expenses come from the polymorphic transactions collection (type-filtered),
// purchases and inventory items from their own collections.
type Source interface {
	Transactions(ctx context.Context, ownerID string, typ records.TransactionType) ([]records.Transaction, error)
	Purchases(ctx context.Context, ownerID string) ([]records.Purchase, error)
	Items(ctx context.Context, ownerID string) ([]inventory.Item, error)
}

// Service generates reports.
type Service struct {
	source      Source
	cache       *gocache.Cache
	broadcaster *Broadcaster

	// now is swappable in tests
	now func() time.Time
}

// NewService creates a reports service. cacheTTL <= 0 disables caching.
func NewService(source Source, broadcaster *Broadcaster, cacheTTL time.Duration) *Service {
	var c *gocache.Cache
	if cacheTTL > 0 {
		c = gocache.New(cacheTTL, 2*cacheTTL)
	}
	if broadcaster == nil {
		broadcaster = NewBroadcaster()
	}
	return &Service{
		source:      source,
		cache:       c,
		broadcaster: broadcaster,
		now:         time.Now,
	}
}

// Broadcaster exposes the "reports generated" channel for consumers.
func (s *Service) Broadcaster() *Broadcaster {
	return s.broadcaster
}

// Generate produces one report for the given type over the filter snapshot.
func (s *Service) Generate(ctx context.Context, typ Type, filter Filter) (*Report, error) {
	ownerID := appctx.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, apperror.NewNotAuthenticated()
	}
	if _, err := ParseType(string(typ)); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "report.generate")
	span.SetAttributes(attribute.String("report.type", string(typ)))
	defer span.End()

	cacheKey := fmt.Sprintf("%s|%s|%d|%d", ownerID, typ, filter.Start.UnixNano(), filter.End.UnixNano())
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			return cached.(*Report), nil
		}
	}

	rows, err := s.fetchRows(ctx, ownerID, typ)
	if err != nil {
		return nil, fmt.Errorf("fetch %s records: %w", typ, err)
	}

	report := &Report{
		ID:          fmt.Sprintf("%s-%d", typ, s.now().UnixMilli()),
		Type:        typ,
		Title:       typ.Title(),
		Description: typ.Description(),
		Filter:      filter,
		Summary:     summarize(rows, filter),
		Data:        dataPoints(rows),
		CreatedAt:   s.now(),
	}

	if s.cache != nil {
		s.cache.Set(cacheKey, report, gocache.DefaultExpiration)
	}

	logger.Debug(ctx, "report generated",
		"type", typ,
		"count", report.Summary.Count,
		"total", report.Summary.TotalAmount,
	)
	return report, nil
}

// GenerateBatch generates every report type concurrently over one filter
// snapshot and publishes the batch. A failed type is reported in
// Batch.Errors and never prevents the other types from completing.
func (s *Service) GenerateBatch(ctx context.Context, filter Filter) (Batch, error) {
	if appctx.GetOwnerID(ctx) == "" {
		return Batch{}, apperror.NewNotAuthenticated()
	}

	ctx, span := tracer.Start(ctx, "report.generate_batch")
	defer span.End()

	type result struct {
		typ    Type
		report *Report
		err    error
	}

	results := make([]result, len(AllTypes))
	var wg sync.WaitGroup
	for i, typ := range AllTypes {
		wg.Add(1)
		go func(i int, typ Type) {
			defer wg.Done()
			report, err := s.Generate(ctx, typ, filter)
			results[i] = result{typ: typ, report: report, err: err}
		}(i, typ)
	}
	wg.Wait()

	batch := Batch{GeneratedAt: s.now()}
	for _, r := range results {
		if r.err != nil {
			if batch.Errors == nil {
				batch.Errors = make(map[Type]error)
			}
			batch.Errors[r.typ] = r.err
			logger.Error(ctx, "report type failed", "type", r.typ, "error", r.err)
			continue
		}
		batch.Reports = append(batch.Reports, r.report)
	}

	s.broadcaster.Publish(batch)
	return batch, nil
}

// row is the uniform in-memory shape every source record is reduced to.
// Both summary passes and the data-point pass run over the same fetched set.
type row struct {
	// date used for period attribution (permissively resolved)
	date time.Time
	// signed contribution to the summary total
	signed types.Money
	point  DataPoint
}

func (s *Service) fetchRows(ctx context.Context, ownerID string, typ Type) ([]row, error) {
	now := s.now()

	switch typ {
	case TypeSales:
		txs, err := s.source.Transactions(ctx, ownerID, records.TypeSale)
		if err != nil {
			return nil, err
		}
		return transactionRows(txs, typ, now), nil

	case TypeExpenses:
		txs, err := s.source.Transactions(ctx, ownerID, records.TypeExpense)
		if err != nil {
			return nil, err
		}
		return transactionRows(txs, typ, now), nil

	case TypeProfitLoss:
		txs, err := s.source.Transactions(ctx, ownerID, "")
		if err != nil {
			return nil, err
		}
		return transactionRows(txs, typ, now), nil

	case TypePurchases:
		purchases, err := s.source.Purchases(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		return purchaseRows(purchases, now), nil

	case TypeInventory:
		items, err := s.source.Items(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		return itemRows(items, now), nil
	}

	return nil, apperror.NewInvalidReportType(string(typ))
}

// summarize computes the summary in the two-pass shape: count and total over
// the entire fetched set, then a second scan of the same set restricted to
// the window of equal duration immediately preceding the filter's start.
func summarize(rows []row, filter Filter) Summary {
	total := types.Zero()
	for _, r := range rows {
		total = total.Add(r.signed)
	}
	count := len(rows)

	prevStart, prevEnd := PreviousPeriod(filter)
	previousTotal := types.Zero()
	for _, r := range rows {
		if !r.date.Before(prevStart) && !r.date.After(prevEnd) {
			previousTotal = previousTotal.Add(r.signed)
		}
	}

	change := types.Zero()
	if previousTotal.IsPositive() {
		change = total.Sub(previousTotal).
			Div(previousTotal).
			Mul(types.NewMoneyFromInt(100))
	}

	average := types.Zero()
	if count > 0 {
		average = total.Div(types.NewMoneyFromInt(int64(count)))
	}

	return Summary{
		TotalAmount:          total,
		Count:                count,
		AverageAmount:        average,
		PreviousPeriodChange: change,
		FormattedTotal:       formatCurrency(total),
		FormattedAverage:     formatCurrency(average),
	}
}

// dataPoints orders rows newest first. Ties keep their fetch order.
func dataPoints(rows []row) []DataPoint {
	sorted := make([]row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].date.After(sorted[j].date)
	})

	points := make([]DataPoint, len(sorted))
	for i, r := range sorted {
		points[i] = r.point
	}
	return points
}

func transactionRows(txs []records.Transaction, typ Type, now time.Time) []row {
	rows := make([]row, 0, len(txs))
	for _, tx := range txs {
		date := resolveDate(tx.Date, tx.CreatedAt, now)
		amount := tx.Amount

		switch typ {
		case TypeProfitLoss:
			isIncome := tx.Type == records.TypeSale
			value := amount
			prefix := "Income"
			status := "Income"
			category := tx.Category
			if !isIncome {
				value = amount.Neg()
				prefix = "Expense"
				status = "Expense"
			}
			if category == "" {
				category = status
			}
			label := tx.Description
			if label == "" {
				label = tx.ID.String()
			}
			rows = append(rows, row{
				date:   date,
				signed: value,
				point: DataPoint{
					Date:           date,
					Value:          value,
					Label:          fmt.Sprintf("%s - %s", prefix, label),
					FormattedValue: formatCurrency(value.Abs()),
					Details: &Details{
						Category: category,
						Items: []LineItem{{
							Name:           label,
							Quantity:       1,
							Price:          value.Abs(),
							FormattedPrice: formatCurrency(value.Abs()),
						}},
						Status: status,
					},
				},
			})

		case TypeExpenses:
			label := tx.Description
			if label == "" {
				label = fmt.Sprintf("Expense #%s", tx.ID)
			}
			rows = append(rows, row{
				date:   date,
				signed: amount,
				point: DataPoint{
					Date:           date,
					Value:          amount,
					Label:          label,
					FormattedValue: formatCurrency(amount),
					Details: &Details{
						Category: orDefault(tx.Category, "Uncategorized"),
						Items: []LineItem{{
							Name:           orDefault(tx.Description, "Expense"),
							Quantity:       1,
							Price:          amount,
							FormattedPrice: formatCurrency(amount),
						}},
						Status: displayStatus(tx.Status),
					},
				},
			})

		default: // sales
			label := tx.Description
			if label == "" {
				label = fmt.Sprintf("Sale #%s", tx.ID)
			}
			customer := ""
			if tx.CustomerName != nil {
				customer = *tx.CustomerName
			}
			rows = append(rows, row{
				date:   date,
				signed: amount,
				point: DataPoint{
					Date:           date,
					Value:          amount,
					Label:          label,
					FormattedValue: formatCurrency(amount),
					Details: &Details{
						Customer: customer,
						Category: orDefault(tx.Category, "Uncategorized"),
						Items:    []LineItem{},
						Status:   displayStatus(tx.Status),
					},
				},
			})
		}
	}
	return rows
}

func purchaseRows(purchases []records.Purchase, now time.Time) []row {
	rows := make([]row, 0, len(purchases))
	for _, p := range purchases {
		date := resolveDate(p.PurchaseDate, p.CreatedAt, now)
		amount := p.Amount

		status := "Paid"
		if p.Outstanding().IsPositive() {
			status = "Pending"
		}

		label := p.Description
		if label == "" {
			label = fmt.Sprintf("Purchase #%s", p.ID)
		}

		rows = append(rows, row{
			date:   date,
			signed: amount,
			point: DataPoint{
				Date:           date,
				Value:          amount,
				Label:          label,
				FormattedValue: formatCurrency(amount),
				Details: &Details{
					Supplier: p.SupplierName,
					Category: orDefault(p.SupplierCategory, "Uncategorized"),
					Items:    []LineItem{},
					Status:   status,
				},
			},
		})
	}
	return rows
}

// itemRows shapes inventory rows. Inventory reporting reflects current state
// only: the data-point date is the item's last-updated timestamp while the
// previous-period attribution uses the item's business date, matching the
// established read behavior.
func itemRows(items []inventory.Item, now time.Time) []row {
	rows := make([]row, 0, len(items))
	for _, item := range items {
		value := item.TotalAmount

		status := "Out of Stock"
		if item.InStock() {
			status = "In Stock"
		}

		label := item.Name
		if label == "" {
			label = fmt.Sprintf("Item #%s", item.ID)
		}

		pointDate := item.UpdatedAt
		if pointDate.IsZero() {
			pointDate = resolveDate("", item.CreatedAt, now)
		}

		initialStock := item.InitialQuantity
		currentStock := item.Quantity

		rows = append(rows, row{
			date:   resolveDate(item.Date, item.CreatedAt, now),
			signed: value,
			point: DataPoint{
				Date:           pointDate,
				Value:          value,
				Label:          label,
				FormattedValue: formatCurrency(value),
				Details: &Details{
					Category:     orDefault(item.Category, "Uncategorized"),
					InitialStock: &initialStock,
					CurrentStock: &currentStock,
					Items: []LineItem{{
						Name:           label,
						Quantity:       currentStock,
						Price:          item.InitialUnitPrice,
						FormattedPrice: formatCurrency(item.InitialUnitPrice),
					}},
					Status: status,
				},
			},
		})
	}
	return rows
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// displayStatus maps stored status values to their report labels.
// Records with no status read as completed.
func displayStatus(s records.SaleStatus) string {
	switch s {
	case records.StatusPending:
		return "Pending"
	case records.StatusCancelled:
		return "Cancelled"
	case records.StatusCompleted, "":
		return "Completed"
	default:
		return string(s)
	}
}
