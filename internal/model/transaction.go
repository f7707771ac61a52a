package model

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID            string               `json:"id,omitempty"`
	UserID        string               `json:"user_id"`
	CategoryID    *string              `json:"category_id,omitempty"`
	Type          string               `json:"type"` // income or expense
	Amount        float64              `json:"amount"`
	Description   string               `json:"description,omitempty"`
	Date          string               `json:"date"` // YYYY-MM-DD
	PaymentMethod *string              `json:"payment_method,omitempty"`
	Tags          []string             `json:"tags,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
	Category      *TransactionCategory `json:"categories,omitempty"`
	CreatedAt     time.Time            `json:"created_at,omitempty"`
}

// TransactionCategory carries the joined category columns on a transaction
// read (PostgREST embeds them under the table name).
type TransactionCategory struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// GenerateID assigns a new UUID when the transaction has none yet.
func (t *Transaction) GenerateID() {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
}

// TransactionFilter narrows a transaction read. The zero value selects
// everything for the user.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      string // income or expense, empty for both
	Limit     int
}
