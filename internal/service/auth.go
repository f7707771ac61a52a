package service

import (
	"context"
	"fmt"

	"fintrack/internal/model"
)

// MinPasswordLength is enforced before any call to the auth provider.
const MinPasswordLength = 6

// AuthProvider is the slice of the auth backend the sign-up and sign-in flows
// need.
type AuthProvider interface {
	SignUp(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	UserFromToken(ctx context.Context, accessToken string) (*model.AuthUser, error)
}

type AuthService struct {
	provider AuthProvider
	tracker  *Tracker
}

func NewAuthService(provider AuthProvider, tracker *Tracker) *AuthService {
	return &AuthService{provider: provider, tracker: tracker}
}

// SignUp creates an account, seeds its default data and signs the user in.
// Validation failures return before any network call. A bootstrap failure
// aborts the flow and surfaces the error; the provisioned account is left in
// place because the public API key cannot remove auth users.
func (s *AuthService) SignUp(ctx context.Context, email, password, confirmPassword string) (*model.Session, error) {
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "is required"}
	}
	if password != confirmPassword {
		return nil, &ValidationError{Field: "confirmPassword", Reason: "passwords do not match"}
	}
	if len(password) < MinPasswordLength {
		return nil, &ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", MinPasswordLength)}
	}

	userID, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, &AuthError{Op: "sign up", Err: err}
	}

	if err := s.tracker.InitializeUser(ctx, userID, email); err != nil {
		return nil, fmt.Errorf("user data initialization failed: %w", err)
	}

	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, &AuthError{Op: "sign in", Err: err}
	}
	return session, nil
}

// SignIn delegates to the provider.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "is required"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Reason: "is required"}
	}

	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, &AuthError{Op: "sign in", Err: err}
	}
	return session, nil
}

func (s *AuthService) SignOut(ctx context.Context, accessToken string) error {
	if err := s.provider.SignOut(ctx, accessToken); err != nil {
		return &AuthError{Op: "sign out", Err: err}
	}
	return nil
}

// UserFromToken resolves the user behind a session token via the provider.
func (s *AuthService) UserFromToken(ctx context.Context, accessToken string) (*model.AuthUser, error) {
	user, err := s.provider.UserFromToken(ctx, accessToken)
	if err != nil {
		return nil, &AuthError{Op: "resolve session", Err: err}
	}
	return user, nil
}
