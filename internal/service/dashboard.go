package service

import (
	"context"
	"sort"

	"fintrack/internal/model"
)

// DashboardData holds the aggregated totals plus the full transaction feed.
type DashboardData struct {
	TotalIncome        float64
	TotalExpense       float64
	TotalBalance       float64
	SavingsRate        float64
	RecentTransactions []model.Transaction
}

// Aggregate computes the dashboard totals in a single pass over the
// transactions. The savings rate is defined as 0 when there is no income.
func Aggregate(transactions []model.Transaction) *DashboardData {
	data := &DashboardData{RecentTransactions: transactions}

	for _, t := range transactions {
		switch t.Type {
		case model.TypeIncome:
			data.TotalIncome += t.Amount
		case model.TypeExpense:
			data.TotalExpense += t.Amount
		}
	}

	data.TotalBalance = data.TotalIncome - data.TotalExpense
	if data.TotalIncome > 0 {
		data.SavingsRate = (data.TotalIncome - data.TotalExpense) / data.TotalIncome * 100
	}
	return data
}

// Summary is everything the dashboard shows for one user.
type Summary struct {
	Profile    *model.Profile
	Data       *DashboardData
	Categories []model.Category
	Goals      []model.Goal
}

// Summary re-fetches every dashboard input wholesale. It runs after each
// mutating action instead of applying deltas, so each call is a fresh
// snapshot of the remote store.
func (s *Tracker) Summary(ctx context.Context, userID string) (*Summary, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, &DataError{Op: "get profile", Err: err}
	}

	categories, err := s.repo.GetCategories(ctx, userID)
	if err != nil {
		return nil, &DataError{Op: "get categories", Err: err}
	}

	goals, err := s.repo.GetGoals(ctx, userID)
	if err != nil {
		return nil, &DataError{Op: "get goals", Err: err}
	}

	transactions, err := s.repo.GetTransactions(ctx, userID, model.TransactionFilter{})
	if err != nil {
		return nil, &DataError{Op: "get transactions", Err: err}
	}

	return &Summary{
		Profile:    profile,
		Data:       Aggregate(transactions),
		Categories: categories,
		Goals:      goals,
	}, nil
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Name   string
	Color  string
	Amount float64
}

const uncategorizedColor = "#6B7280"

// ExpenseBreakdown sums expenses per category name, largest first.
// Transactions without a category are grouped under "Sem categoria".
func (s *Tracker) ExpenseBreakdown(ctx context.Context, userID string) ([]CategoryTotal, error) {
	transactions, err := s.repo.GetTransactions(ctx, userID, model.TransactionFilter{Type: model.TypeExpense})
	if err != nil {
		return nil, &DataError{Op: "get transactions", Err: err}
	}

	categories, err := s.repo.GetCategories(ctx, userID)
	if err != nil {
		return nil, &DataError{Op: "get categories", Err: err}
	}
	colors := make(map[string]string, len(categories))
	for _, c := range categories {
		colors[c.Name] = c.Color
	}

	sums := make(map[string]float64)
	for _, t := range transactions {
		name := "Sem categoria"
		if t.Category != nil && t.Category.Name != "" {
			name = t.Category.Name
		}
		sums[name] += t.Amount
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for name, amount := range sums {
		color, ok := colors[name]
		if !ok {
			color = uncategorizedColor
		}
		totals = append(totals, CategoryTotal{Name: name, Color: color, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Amount > totals[j].Amount
	})
	return totals, nil
}
