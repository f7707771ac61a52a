package model

import "time"

type Goal struct {
	ID            string    `json:"id,omitempty"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Deadline      *string   `json:"deadline,omitempty"` // YYYY-MM-DD
	Status        *string   `json:"status,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Priority      *string   `json:"priority,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

// Progress returns the display progress in percent, clamped to [0, 100].
// The stored amounts themselves are never clamped.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	progress := g.CurrentAmount / g.TargetAmount * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
