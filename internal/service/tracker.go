package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/model"
)

// Repository is the slice of the data gateway the tracker needs.
type Repository interface {
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	UpsertProfile(ctx context.Context, profile *model.Profile) error
	UpsertUserSettings(ctx context.Context, settings *model.UserSettings) error
	UpsertCategories(ctx context.Context, categories []model.Category) error
	GetCategories(ctx context.Context, userID string) ([]model.Category, error)
	CreateTransaction(ctx context.Context, transaction *model.Transaction) error
	GetTransactions(ctx context.Context, userID string, filter model.TransactionFilter) ([]model.Transaction, error)
	CreateGoal(ctx context.Context, goal *model.Goal) error
	GetGoals(ctx context.Context, userID string) ([]model.Goal, error)
}

// Tracker implements the finance-tracking flows on top of the data gateway.
type Tracker struct {
	repo Repository
}

func NewTracker(repo Repository) *Tracker {
	return &Tracker{repo: repo}
}

const dateLayout = "2006-01-02"

// NewTransaction is the raw transaction form input. Amount arrives as the
// submitted string and is parsed here.
type NewTransaction struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
	Date        string `json:"date"`
}

// AddTransaction validates the form input and inserts one row scoped to the
// user. A supplied category must exist, belong to the user and carry the same
// type as the transaction.
func (s *Tracker) AddTransaction(ctx context.Context, userID string, input NewTransaction) (*model.Transaction, error) {
	if input.Type != model.TypeIncome && input.Type != model.TypeExpense {
		return nil, &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	if input.Description == "" {
		return nil, &ValidationError{Field: "description", Reason: "is required"}
	}

	amount, err := strconv.ParseFloat(input.Amount, 64)
	if err != nil || amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be a positive number"}
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, &ValidationError{Field: "date", Reason: "must be formatted as YYYY-MM-DD"}
	}

	var categoryID *string
	if input.CategoryID != "" {
		category, err := s.findCategory(ctx, userID, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category.Type != input.Type {
			return nil, &ValidationError{Field: "category_id", Reason: "category type does not match transaction type"}
		}
		categoryID = &category.ID
	}

	transaction := &model.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        input.Type,
		Amount:      amount,
		Description: input.Description,
		Date:        date,
		CreatedAt:   time.Now(),
	}
	transaction.GenerateID()

	if err := s.repo.CreateTransaction(ctx, transaction); err != nil {
		return nil, &DataError{Op: "create transaction", Err: err}
	}
	return transaction, nil
}

func (s *Tracker) findCategory(ctx context.Context, userID, categoryID string) (*model.Category, error) {
	categories, err := s.repo.GetCategories(ctx, userID)
	if err != nil {
		return nil, &DataError{Op: "get categories", Err: err}
	}
	for i := range categories {
		if categories[i].ID == categoryID {
			return &categories[i], nil
		}
	}
	return nil, &ValidationError{Field: "category_id", Reason: "unknown category"}
}

// NewGoal is the raw goal form input.
type NewGoal struct {
	Name          string `json:"name"`
	TargetAmount  string `json:"target_amount"`
	CurrentAmount string `json:"current_amount"`
	Deadline      string `json:"deadline"`
}

// AddGoal validates the form input and inserts one goal row for the user.
func (s *Tracker) AddGoal(ctx context.Context, userID string, input NewGoal) (*model.Goal, error) {
	if input.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	}

	target, err := strconv.ParseFloat(input.TargetAmount, 64)
	if err != nil || target <= 0 {
		return nil, &ValidationError{Field: "target_amount", Reason: "must be a positive number"}
	}

	current := 0.0
	if input.CurrentAmount != "" {
		current, err = strconv.ParseFloat(input.CurrentAmount, 64)
		if err != nil || current < 0 {
			return nil, &ValidationError{Field: "current_amount", Reason: "must be zero or a positive number"}
		}
	}

	var deadline *string
	if input.Deadline != "" {
		if _, err := time.Parse(dateLayout, input.Deadline); err != nil {
			return nil, &ValidationError{Field: "deadline", Reason: "must be formatted as YYYY-MM-DD"}
		}
		deadline = &input.Deadline
	}

	now := time.Now()
	goal := &model.Goal{
		UserID:        userID,
		Name:          input.Name,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateGoal(ctx, goal); err != nil {
		return nil, &DataError{Op: "create goal", Err: err}
	}
	return goal, nil
}

// localPart returns everything before the @ of an email address.
func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
