package reporting

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedLabel groups entries whose category cannot be resolved.
const UncategorizedLabel = "Uncategorized"

// EntryType mirrors the two transaction kinds the engine understands.
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// Entry is the engine's view of a transaction, independent of how
// transactions are stored.
type Entry struct {
	Type       EntryType
	Amount     decimal.Decimal
	Date       time.Time
	CategoryID string
}

// CategoryTotals holds the subtotals for one category name.
type CategoryTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Summary is the result of aggregating entries over a date range.
type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	Balance           decimal.Decimal
	TransactionsCount int
	Period            Period
	Range             DateRange
	CategoryBreakdown map[string]CategoryTotals
}

// Summarize aggregates the entries that fall inside r in a single pass.
// categoryNames maps category id to display name; entries whose id is
// missing from it are reported under UncategorizedLabel. Breakdown buckets
// are keyed by display name, so two categories sharing a name are merged.
func Summarize(entries []Entry, categoryNames map[string]string, period Period, r DateRange) Summary {
	s := Summary{
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		Period:            period,
		Range:             r,
		CategoryBreakdown: make(map[string]CategoryTotals),
	}

	for _, e := range entries {
		if !r.Contains(e.Date) {
			continue
		}

		name, ok := categoryNames[e.CategoryID]
		if !ok || name == "" {
			name = UncategorizedLabel
		}
		bucket, seen := s.CategoryBreakdown[name]
		if !seen {
			bucket = CategoryTotals{Income: decimal.Zero, Expense: decimal.Zero}
		}

		switch e.Type {
		case EntryIncome:
			s.TotalIncome = s.TotalIncome.Add(e.Amount)
			bucket.Income = bucket.Income.Add(e.Amount)
		case EntryExpense:
			s.TotalExpense = s.TotalExpense.Add(e.Amount)
			bucket.Expense = bucket.Expense.Add(e.Amount)
		default:
			continue
		}

		s.CategoryBreakdown[name] = bucket
		s.TransactionsCount++
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}
