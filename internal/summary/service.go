// Package summary computes the reporting reductions over expenses and
// incomes: per-category shares and month-over-month growth.
package summary

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Source yields aggregate totals for one side of the ledger (expenses or
// incomes). Category sums are keyed by category name, monthly sums by
// YYYY-MM.
type Source interface {
	SumByCategory(ctx context.Context, userID string) (map[string]decimal.Decimal, error)
	SumByMonth(ctx context.Context, userID string) (map[string]decimal.Decimal, error)
}

type Service struct {
	expenses Source
	incomes  Source
}

func NewService(expenses, incomes Source) *Service {
	return &Service{expenses: expenses, incomes: incomes}
}

// Side selects which ledger a report runs over.
type Side string

const (
	SideExpenses Side = "expenses"
	SideIncomes  Side = "incomes"
)

func (s *Service) source(side Side) (Source, error) {
	switch side {
	case SideExpenses:
		return s.expenses, nil
	case SideIncomes:
		return s.incomes, nil
	default:
		return nil, fmt.Errorf("unknown summary side %q", side)
	}
}

type CategoryShare struct {
	Category string
	Total    decimal.Decimal
	// Percent of the overall total, rounded to two decimal places.
	Percent decimal.Decimal
}

// ByCategory returns per-category totals with their share of the overall
// total, largest first.
func (s *Service) ByCategory(ctx context.Context, userID string, side Side) ([]CategoryShare, error) {
	src, err := s.source(side)
	if err != nil {
		return nil, err
	}

	totals, err := src.SumByCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("summing by category: %w", err)
	}

	overall := decimal.Zero
	for _, total := range totals {
		overall = overall.Add(total)
	}

	shares := make([]CategoryShare, 0, len(totals))

	for category, total := range totals {
		share := CategoryShare{Category: category, Total: total}
		if overall.IsPositive() {
			share.Percent = total.Mul(decimal.NewFromInt(100)).DivRound(overall, 2)
		}

		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].Total.Equal(shares[j].Total) {
			return shares[i].Total.GreaterThan(shares[j].Total)
		}

		return shares[i].Category < shares[j].Category
	})

	return shares, nil
}

type MonthGrowth struct {
	Month string // YYYY-MM
	Total decimal.Decimal
	// Growth against the previous month in percent, rounded to two decimal
	// places. Nil for the first month and for months following a zero
	// total, where the ratio is undefined.
	Growth *decimal.Decimal
}

// MonthOverMonth returns monthly totals in chronological order with the
// growth percentage relative to each preceding month.
func (s *Service) MonthOverMonth(ctx context.Context, userID string, side Side) ([]MonthGrowth, error) {
	src, err := s.source(side)
	if err != nil {
		return nil, err
	}

	totals, err := src.SumByMonth(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("summing by month: %w", err)
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}

	sort.Strings(months)

	out := make([]MonthGrowth, 0, len(months))

	for i, month := range months {
		entry := MonthGrowth{Month: month, Total: totals[month]}

		if i > 0 {
			prev := totals[months[i-1]]
			if prev.IsPositive() {
				growth := totals[month].Sub(prev).Mul(decimal.NewFromInt(100)).DivRound(prev, 2)
				entry.Growth = &growth
			}
		}

		out = append(out, entry)
	}

	return out, nil
}
