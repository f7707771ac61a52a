package server

import (
	"context"
	"encoding/json"
	"net/http"

	"fintrack/internal/config"
	"fintrack/internal/model"
	"fintrack/internal/service"
)

// TrackerService is what the dashboard handlers need from the tracker.
type TrackerService interface {
	Summary(ctx context.Context, userID string) (*service.Summary, error)
	ExpenseBreakdown(ctx context.Context, userID string) ([]service.CategoryTotal, error)
	AddTransaction(ctx context.Context, userID string, input service.NewTransaction) (*model.Transaction, error)
	AddGoal(ctx context.Context, userID string, input service.NewGoal) (*model.Goal, error)
}

// ChartRenderer renders the expense breakdown as an image.
type ChartRenderer interface {
	ExpenseBreakdown(totals []service.CategoryTotal) ([]byte, error)
}

type DashboardHandler struct {
	auth    AuthService
	tracker TrackerService
	charts  ChartRenderer
}

func NewDashboardHandler(auth AuthService, tracker TrackerService, charts ChartRenderer) *DashboardHandler {
	return &DashboardHandler{auth: auth, tracker: tracker, charts: charts}
}

// currentUser resolves the session cookie to a user through the provider. The
// route guard only checks cookie presence, so a stale token is caught here.
func (h *DashboardHandler) currentUser(w http.ResponseWriter, r *http.Request) (*model.AuthUser, bool) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		config.JSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated", RedirectTo: loginPath})
		return nil, false
	}

	user, err := h.auth.UserFromToken(r.Context(), cookie.Value)
	if err != nil {
		log.WithError(err).Warn("Session token rejected")
		config.JSON(w, http.StatusUnauthorized, errorResponse{Error: "session expired", RedirectTo: loginPath})
		return nil, false
	}
	return user, true
}

type goalResponse struct {
	model.Goal
	Progress float64 `json:"progress"`
}

type summaryResponse struct {
	Profile            *model.Profile      `json:"profile,omitempty"`
	TotalIncome        float64             `json:"total_income"`
	TotalExpense       float64             `json:"total_expense"`
	TotalBalance       float64             `json:"total_balance"`
	SavingsRate        float64             `json:"savings_rate"`
	FormattedIncome    string              `json:"formatted_income"`
	FormattedExpense   string              `json:"formatted_expense"`
	FormattedBalance   string              `json:"formatted_balance"`
	RecentTransactions []model.Transaction `json:"recent_transactions"`
	Categories         []model.Category    `json:"categories"`
	Goals              []goalResponse      `json:"goals"`
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	summary, err := h.tracker.Summary(r.Context(), user.ID)
	if err != nil {
		respondError(w, log, err)
		return
	}

	code := "BRL"
	if summary.Profile != nil && summary.Profile.Currency != "" {
		code = summary.Profile.Currency
	}

	goals := make([]goalResponse, 0, len(summary.Goals))
	for _, g := range summary.Goals {
		goals = append(goals, goalResponse{Goal: g, Progress: g.Progress()})
	}

	config.JSON(w, http.StatusOK, summaryResponse{
		Profile:            summary.Profile,
		TotalIncome:        summary.Data.TotalIncome,
		TotalExpense:       summary.Data.TotalExpense,
		TotalBalance:       summary.Data.TotalBalance,
		SavingsRate:        summary.Data.SavingsRate,
		FormattedIncome:    service.FormatCurrency(summary.Data.TotalIncome, code),
		FormattedExpense:   service.FormatCurrency(summary.Data.TotalExpense, code),
		FormattedBalance:   service.FormatCurrency(summary.Data.TotalBalance, code),
		RecentTransactions: summary.Data.RecentTransactions,
		Categories:         summary.Categories,
		Goals:              goals,
	})
}

func (h *DashboardHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var input service.NewTransaction
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	transaction, err := h.tracker.AddTransaction(r.Context(), user.ID, input)
	if err != nil {
		respondError(w, log, err)
		return
	}

	log.WithField("transaction_id", transaction.ID).Info("Transaction created")
	config.JSON(w, http.StatusCreated, transaction)
}

func (h *DashboardHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var input service.NewGoal
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	goal, err := h.tracker.AddGoal(r.Context(), user.ID, input)
	if err != nil {
		respondError(w, log, err)
		return
	}

	log.WithField("goal_id", goal.ID).Info("Goal created")
	config.JSON(w, http.StatusCreated, goalResponse{Goal: *goal, Progress: goal.Progress()})
}

// ExpenseChart serves the expense-by-category donut. 204 when the user has no
// expenses yet.
func (h *DashboardHandler) ExpenseChart(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	totals, err := h.tracker.ExpenseBreakdown(r.Context(), user.ID)
	if err != nil {
		respondError(w, log, err)
		return
	}

	png, err := h.charts.ExpenseBreakdown(totals)
	if err != nil {
		log.WithError(err).Error("Failed to render expense chart")
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	if png == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
