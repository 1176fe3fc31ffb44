// Package reports provides report generation: summary totals,
// period-over-period comparison and per-record data points over the owner's
// money records and inventory.
package reports

import (
	"fmt"
	"time"

	"accountease/internal/core/apperror"
	"accountease/internal/core/types"
)

// Type identifies a report kind.
type Type string

const (
	TypeSales      Type = "sales"
	TypeExpenses   Type = "expenses"
	TypePurchases  Type = "purchases"
	TypeInventory  Type = "inventory"
	TypeProfitLoss Type = "profit_loss"
)

// AllTypes lists every report type in batch-generation order.
var AllTypes = []Type{TypeSales, TypeExpenses, TypePurchases, TypeInventory, TypeProfitLoss}

// ParseType validates a report type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeSales, TypeExpenses, TypePurchases, TypeInventory, TypeProfitLoss:
		return Type(s), nil
	}
	return "", apperror.NewInvalidReportType(s)
}

// Title returns the display title for the report type.
func (t Type) Title() string {
	switch t {
	case TypeSales:
		return "Sales Report"
	case TypeExpenses:
		return "Expenses Report"
	case TypePurchases:
		return "Purchase Report"
	case TypeInventory:
		return "Inventory Report"
	case TypeProfitLoss:
		return "Profit & Loss Statement"
	}
	return string(t)
}

// Description returns the display description for the report type.
func (t Type) Description() string {
	switch t {
	case TypeSales:
		return "Overview of all sales transactions and revenue"
	case TypeExpenses:
		return "Breakdown of all business expenses"
	case TypePurchases:
		return "Analysis of inventory purchases"
	case TypeInventory:
		return "Current stock levels and movement"
	case TypeProfitLoss:
		return "Complete profit and loss analysis"
	}
	return ""
}

// Summary holds the derived totals of one report. Division by zero is
// defined away: average is 0 when count is 0, the period-over-period change
// is 0 when the previous period's total is not positive.
type Summary struct {
	TotalAmount          types.Money `json:"totalAmount"`
	Count                int         `json:"count"`
	AverageAmount        types.Money `json:"averageAmount"`
	PreviousPeriodChange types.Money `json:"previousPeriodChange"`
	FormattedTotal       string      `json:"formattedTotal"`
	FormattedAverage     string      `json:"formattedAverage"`
}

// LineItem is one detail line of a data point.
type LineItem struct {
	Name           string      `json:"name"`
	Quantity       int64       `json:"quantity"`
	Price          types.Money `json:"price"`
	FormattedPrice string      `json:"formattedPrice"`
}

// Details is the type-dependent payload of a data point.
type Details struct {
	Customer     string     `json:"customer,omitempty"`
	Supplier     string     `json:"supplier,omitempty"`
	Category     string     `json:"category,omitempty"`
	InitialStock *int64     `json:"initialStock,omitempty"`
	CurrentStock *int64     `json:"currentStock,omitempty"`
	Items        []LineItem `json:"items"`
	Status       string     `json:"status"`
}

// DataPoint is one row of a report, derived from a single source record.
type DataPoint struct {
	Date           time.Time   `json:"date"`
	Value          types.Money `json:"value"`
	Label          string      `json:"label"`
	FormattedValue string      `json:"formattedValue"`
	Details        *Details    `json:"details,omitempty"`
}

// Report is the full result of one generation pass. Not persisted.
type Report struct {
	ID          string      `json:"id"`
	Type        Type        `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Filter      Filter      `json:"filter"`
	Summary     Summary     `json:"summary"`
	Data        []DataPoint `json:"data"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Batch is the result of generating all report types in one pass. A failure
// of one type never aborts the others; per-type errors land in Errors.
type Batch struct {
	Reports     []*Report      `json:"reports"`
	Errors      map[Type]error `json:"-"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

// formatCurrency renders a raw amount with the fixed currency code.
// Anything richer (locale grouping etc.) is presentation-side.
func formatCurrency(v types.Money) string {
	return fmt.Sprintf("%s %s", types.CurrencyCode, v.StringFixed(2))
}
