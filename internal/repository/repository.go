package repository

import (
	"context"

	"fintrack/internal/model"
)

// Repository is the data gateway against the remote table API. Every row it
// touches is scoped to a single user id; the remote store is the sole source
// of truth.
type Repository interface {
	// Profiles and settings
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	UpsertProfile(ctx context.Context, profile *model.Profile) error
	UpsertUserSettings(ctx context.Context, settings *model.UserSettings) error

	// Categories
	UpsertCategories(ctx context.Context, categories []model.Category) error
	GetCategories(ctx context.Context, userID string) ([]model.Category, error)

	// Transactions
	CreateTransaction(ctx context.Context, transaction *model.Transaction) error
	GetTransactions(ctx context.Context, userID string, filter model.TransactionFilter) ([]model.Transaction, error)

	// Goals
	CreateGoal(ctx context.Context, goal *model.Goal) error
	GetGoals(ctx context.Context, userID string) ([]model.Goal, error)
}
