package model

import "time"

// Profile is the per-user profile row. One per user, created at sign-up with
// the user id as primary key.
type Profile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
