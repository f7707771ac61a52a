package service

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/model"
)

const defaultCurrency = "BRL"

type defaultCategory struct {
	name  string
	color string
	icon  string
}

// Default catalog seeded for every new account.
var (
	defaultIncomeCategories = []defaultCategory{
		{"Salário", "#10B981", "Briefcase"},
		{"Freelance", "#3B82F6", "Code"},
		{"Investimentos", "#8B5CF6", "TrendingUp"},
		{"Outros", "#6B7280", "DollarSign"},
	}
	defaultExpenseCategories = []defaultCategory{
		{"Alimentação", "#EF4444", "UtensilsCrossed"},
		{"Transporte", "#F59E0B", "Car"},
		{"Moradia", "#EC4899", "Home"},
		{"Saúde", "#14B8A6", "Heart"},
		{"Educação", "#6366F1", "GraduationCap"},
		{"Lazer", "#8B5CF6", "Gamepad2"},
		{"Compras", "#F97316", "ShoppingBag"},
		{"Contas", "#64748B", "FileText"},
		{"Outros", "#6B7280", "MoreHorizontal"},
	}
)

// InitializeUser seeds the profile, settings and default categories for a
// newly created account. All inserts are upserts on declared unique keys, so
// running it again for the same user changes nothing. Any failure aborts the
// surrounding sign-up flow.
func (s *Tracker) InitializeUser(ctx context.Context, userID, email string) error {
	now := time.Now()

	profile := &model.Profile{
		ID:        userID,
		FullName:  localPart(email),
		Currency:  defaultCurrency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return &DataError{Op: "create profile", Err: err}
	}

	settings := &model.UserSettings{
		UserID:               userID,
		Theme:                "light",
		Language:             "pt-BR",
		NotificationsEnabled: true,
		EmailNotifications:   true,
		BudgetAlerts:         true,
		GoalReminders:        true,
		CreatedAt:            now,
	}
	if err := s.repo.UpsertUserSettings(ctx, settings); err != nil {
		return &DataError{Op: "create user settings", Err: err}
	}

	categories := make([]model.Category, 0, len(defaultIncomeCategories)+len(defaultExpenseCategories))
	for _, c := range defaultIncomeCategories {
		categories = append(categories, model.Category{
			UserID:    userID,
			Name:      c.name,
			Type:      model.TypeIncome,
			Color:     c.color,
			Icon:      c.icon,
			CreatedAt: now,
		})
	}
	for _, c := range defaultExpenseCategories {
		categories = append(categories, model.Category{
			UserID:    userID,
			Name:      c.name,
			Type:      model.TypeExpense,
			Color:     c.color,
			Icon:      c.icon,
			CreatedAt: now,
		})
	}
	if err := s.repo.UpsertCategories(ctx, categories); err != nil {
		return &DataError{Op: fmt.Sprintf("create %d default categories", len(categories)), Err: err}
	}

	return nil
}
