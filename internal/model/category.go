package model

import "time"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Category struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // income or expense
	Color     string    `json:"color"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
