package model

import "time"

// UserSettings is created once at sign-up with fixed defaults and is not read
// back by any current flow.
type UserSettings struct {
	ID                   string    `json:"id,omitempty"`
	UserID               string    `json:"user_id"`
	Theme                string    `json:"theme"`
	Language             string    `json:"language"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	EmailNotifications   bool      `json:"email_notifications"`
	BudgetAlerts         bool      `json:"budget_alerts"`
	GoalReminders        bool      `json:"goal_reminders"`
	CreatedAt            time.Time `json:"created_at,omitempty"`
}
