package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/model"
	"fintrack/internal/service"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name         string
		transactions []model.Transaction
		wantIncome   float64
		wantExpense  float64
		wantBalance  float64
		wantRate     float64
	}{
		{
			name: "income and expenses",
			transactions: []model.Transaction{
				{Type: model.TypeIncome, Amount: 1000},
				{Type: model.TypeExpense, Amount: 300},
				{Type: model.TypeExpense, Amount: 200},
			},
			wantIncome:  1000,
			wantExpense: 500,
			wantBalance: 500,
			wantRate:    50,
		},
		{
			name:         "no transactions",
			transactions: nil,
			wantIncome:   0,
			wantExpense:  0,
			wantBalance:  0,
			wantRate:     0,
		},
		{
			name: "expenses exceed income",
			transactions: []model.Transaction{
				{Type: model.TypeIncome, Amount: 100},
				{Type: model.TypeExpense, Amount: 150},
			},
			wantIncome:  100,
			wantExpense: 150,
			wantBalance: -50,
			wantRate:    -50,
		},
		{
			name: "zero income defines savings rate as zero",
			transactions: []model.Transaction{
				{Type: model.TypeExpense, Amount: 75},
			},
			wantIncome:  0,
			wantExpense: 75,
			wantBalance: -75,
			wantRate:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := service.Aggregate(tt.transactions)

			assert.InDelta(t, tt.wantIncome, data.TotalIncome, 1e-9)
			assert.InDelta(t, tt.wantExpense, data.TotalExpense, 1e-9)
			assert.InDelta(t, tt.wantBalance, data.TotalBalance, 1e-9)
			assert.InDelta(t, tt.wantRate, data.SavingsRate, 1e-9)
			assert.Len(t, data.RecentTransactions, len(tt.transactions))
		})
	}
}

func TestSummary(t *testing.T) {
	repo := newFakeRepo()
	tracker := service.NewTracker(repo)
	ctx := context.Background()

	require.NoError(t, tracker.InitializeUser(ctx, "user-1", "ana@example.com"))

	repo.transactions = []model.Transaction{
		{UserID: "user-1", Type: model.TypeIncome, Amount: 1000},
		{UserID: "user-1", Type: model.TypeExpense, Amount: 300},
		{UserID: "user-2", Type: model.TypeExpense, Amount: 999},
	}
	repo.goals = []model.Goal{
		{UserID: "user-1", Name: "Reserva", TargetAmount: 200, CurrentAmount: 50},
	}

	summary, err := tracker.Summary(ctx, "user-1")
	require.NoError(t, err)

	require.NotNil(t, summary.Profile)
	assert.Equal(t, "ana", summary.Profile.FullName)
	assert.Equal(t, "BRL", summary.Profile.Currency)

	assert.InDelta(t, 1000.0, summary.Data.TotalIncome, 1e-9)
	assert.InDelta(t, 300.0, summary.Data.TotalExpense, 1e-9)
	assert.InDelta(t, 700.0, summary.Data.TotalBalance, 1e-9)
	assert.InDelta(t, 70.0, summary.Data.SavingsRate, 1e-9)

	assert.Len(t, summary.Data.RecentTransactions, 2, "other users' rows must not leak in")
	assert.Len(t, summary.Categories, 13)
	assert.Len(t, summary.Goals, 1)
}

func TestExpenseBreakdown(t *testing.T) {
	repo := newFakeRepo()
	tracker := service.NewTracker(repo)
	ctx := context.Background()

	require.NoError(t, tracker.InitializeUser(ctx, "user-1", "ana@example.com"))

	repo.transactions = []model.Transaction{
		{UserID: "user-1", Type: model.TypeExpense, Amount: 120, Category: &model.TransactionCategory{Name: "Moradia", Type: model.TypeExpense}},
		{UserID: "user-1", Type: model.TypeExpense, Amount: 80, Category: &model.TransactionCategory{Name: "Moradia", Type: model.TypeExpense}},
		{UserID: "user-1", Type: model.TypeExpense, Amount: 50, Category: &model.TransactionCategory{Name: "Saúde", Type: model.TypeExpense}},
		{UserID: "user-1", Type: model.TypeExpense, Amount: 10},
		{UserID: "user-1", Type: model.TypeIncome, Amount: 5000},
	}

	totals, err := tracker.ExpenseBreakdown(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, totals, 3)

	assert.Equal(t, "Moradia", totals[0].Name)
	assert.InDelta(t, 200.0, totals[0].Amount, 1e-9)
	assert.Equal(t, "#EC4899", totals[0].Color)

	assert.Equal(t, "Saúde", totals[1].Name)
	assert.InDelta(t, 50.0, totals[1].Amount, 1e-9)

	assert.Equal(t, "Sem categoria", totals[2].Name)
	assert.InDelta(t, 10.0, totals[2].Amount, 1e-9)
	assert.Equal(t, "#6B7280", totals[2].Color)
}
