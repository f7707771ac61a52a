package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/supabase-go"

	"fintrack/internal/model"
)

// Upsert conflict targets declared by the remote schema. Re-running an insert
// with the same key is a no-op instead of a uniqueness violation.
const (
	profileConflictKey  = "id"
	settingsConflictKey = "user_id"
	categoryConflictKey = "user_id,name,type"
)

type SupabaseRepository struct {
	client *supabase.Client
}

func NewSupabaseRepository(client *supabase.Client) *SupabaseRepository {
	return &SupabaseRepository{client: client}
}

func (r *SupabaseRepository) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	data, _, err := r.client.From("profiles").
		Select("*", "", false).
		Eq("id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profiles []model.Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}

func (r *SupabaseRepository) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	_, _, err := r.client.From("profiles").
		Insert(profile, true, profileConflictKey, "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (r *SupabaseRepository) UpsertUserSettings(ctx context.Context, settings *model.UserSettings) error {
	_, _, err := r.client.From("user_settings").
		Insert(settings, true, settingsConflictKey, "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to upsert user settings: %w", err)
	}
	return nil
}

func (r *SupabaseRepository) UpsertCategories(ctx context.Context, categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}
	_, _, err := r.client.From("categories").
		Insert(categories, true, categoryConflictKey, "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to upsert categories: %w", err)
	}
	return nil
}

func (r *SupabaseRepository) GetCategories(ctx context.Context, userID string) ([]model.Category, error) {
	data, _, err := r.client.From("categories").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("name", nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	var categories []model.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse categories: %w", err)
	}
	return categories, nil
}

func (r *SupabaseRepository) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	data, _, err := r.client.From("transactions").
		Insert(transaction, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	var created []model.Transaction
	if err := json.Unmarshal(data, &created); err != nil {
		return fmt.Errorf("failed to parse created transaction: %w", err)
	}
	if len(created) > 0 {
		transaction.ID = created[0].ID
		transaction.CreatedAt = created[0].CreatedAt
	}
	return nil
}

func (r *SupabaseRepository) GetTransactions(ctx context.Context, userID string, filter model.TransactionFilter) ([]model.Transaction, error) {
	query := r.client.From("transactions").
		Select("*, categories(name, type)", "", false).
		Eq("user_id", userID)

	if filter.StartDate != nil {
		query = query.Gte("date", filter.StartDate.Format("2006-01-02"))
	}
	if filter.EndDate != nil {
		query = query.Lte("date", filter.EndDate.Format("2006-01-02"))
	}
	if filter.Type != "" {
		query = query.Eq("type", filter.Type)
	}

	query = query.Order("date.desc", nil)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit, "")
	}

	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	var transactions []model.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("failed to parse transactions: %w", err)
	}
	return transactions, nil
}

func (r *SupabaseRepository) CreateGoal(ctx context.Context, goal *model.Goal) error {
	data, _, err := r.client.From("goals").
		Insert(goal, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}

	var created []model.Goal
	if err := json.Unmarshal(data, &created); err != nil {
		return fmt.Errorf("failed to parse created goal: %w", err)
	}
	if len(created) > 0 {
		goal.ID = created[0].ID
		goal.CreatedAt = created[0].CreatedAt
	}
	return nil
}

func (r *SupabaseRepository) GetGoals(ctx context.Context, userID string) ([]model.Goal, error) {
	data, _, err := r.client.From("goals").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at.desc", nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}

	var goals []model.Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, fmt.Errorf("failed to parse goals: %w", err)
	}
	return goals, nil
}
