package service_test

import (
	"context"
	"fmt"

	"fintrack/internal/model"
)

// fakeRepo mimics the remote store, including its upsert semantics: an upsert
// on an existing conflict key replaces the row instead of duplicating it.
type fakeRepo struct {
	profiles     map[string]model.Profile
	settings     map[string]model.UserSettings
	categories   map[string]model.Category // keyed by user|name|type
	transactions []model.Transaction
	goals        []model.Goal

	profileErr      error
	settingsErr     error
	categoriesErr   error
	transactionsErr error
	goalsErr        error

	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		profiles:   make(map[string]model.Profile),
		settings:   make(map[string]model.UserSettings),
		categories: make(map[string]model.Category),
	}
}

func (r *fakeRepo) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	if r.profileErr != nil {
		return nil, r.profileErr
	}
	if p, ok := r.profiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakeRepo) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	if r.profileErr != nil {
		return r.profileErr
	}
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeRepo) UpsertUserSettings(ctx context.Context, settings *model.UserSettings) error {
	if r.settingsErr != nil {
		return r.settingsErr
	}
	r.settings[settings.UserID] = *settings
	return nil
}

func (r *fakeRepo) UpsertCategories(ctx context.Context, categories []model.Category) error {
	if r.categoriesErr != nil {
		return r.categoriesErr
	}
	for _, c := range categories {
		key := c.UserID + "|" + c.Name + "|" + c.Type
		if existing, ok := r.categories[key]; ok {
			c.ID = existing.ID
		} else {
			r.nextID++
			c.ID = fmt.Sprintf("cat-%d", r.nextID)
		}
		r.categories[key] = c
	}
	return nil
}

func (r *fakeRepo) GetCategories(ctx context.Context, userID string) ([]model.Category, error) {
	if r.categoriesErr != nil {
		return nil, r.categoriesErr
	}
	var out []model.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	if r.transactionsErr != nil {
		return r.transactionsErr
	}
	r.transactions = append(r.transactions, *transaction)
	return nil
}

func (r *fakeRepo) GetTransactions(ctx context.Context, userID string, filter model.TransactionFilter) ([]model.Transaction, error) {
	if r.transactionsErr != nil {
		return nil, r.transactionsErr
	}
	var out []model.Transaction
	for _, t := range r.transactions {
		if t.UserID != userID {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeRepo) CreateGoal(ctx context.Context, goal *model.Goal) error {
	if r.goalsErr != nil {
		return r.goalsErr
	}
	r.goals = append(r.goals, *goal)
	return nil
}

func (r *fakeRepo) GetGoals(ctx context.Context, userID string) ([]model.Goal, error) {
	if r.goalsErr != nil {
		return nil, r.goalsErr
	}
	var out []model.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

// fakeProvider counts auth provider calls so tests can assert which network
// operations ran.
type fakeProvider struct {
	signUpCalls  int
	signInCalls  int
	signOutCalls int

	signUpErr error
	signInErr error

	userID string
}

func (p *fakeProvider) SignUp(ctx context.Context, email, password string) (string, error) {
	p.signUpCalls++
	if p.signUpErr != nil {
		return "", p.signUpErr
	}
	return p.userID, nil
}

func (p *fakeProvider) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	p.signInCalls++
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	return &model.Session{
		AccessToken: "token-" + p.userID,
		ExpiresIn:   3600,
		UserID:      p.userID,
		Email:       email,
	}, nil
}

func (p *fakeProvider) SignOut(ctx context.Context, accessToken string) error {
	p.signOutCalls++
	return nil
}

func (p *fakeProvider) UserFromToken(ctx context.Context, accessToken string) (*model.AuthUser, error) {
	return &model.AuthUser{ID: p.userID}, nil
}
