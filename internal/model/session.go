package model

// Session is an authenticated session issued by the auth provider.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
}

// AuthUser identifies the user behind an access token.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
