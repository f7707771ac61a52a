package repository

import (
	"context"
	"fmt"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"

	"fintrack/internal/model"
)

// GoTrueAuth adapts the GoTrue client to the auth operations the sign-up and
// sign-in flows need. Tokens are issued and validated by the provider; this
// side never inspects them.
type GoTrueAuth struct {
	client gotrue.Client
}

func NewGoTrueAuth(client gotrue.Client) *GoTrueAuth {
	return &GoTrueAuth{client: client}
}

func (a *GoTrueAuth) SignUp(ctx context.Context, email, password string) (string, error) {
	resp, err := a.client.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign up: %w", err)
	}
	return resp.ID.String(), nil
}

func (a *GoTrueAuth) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	resp, err := a.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}
	return &model.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		UserID:       resp.User.ID.String(),
		Email:        resp.User.Email,
	}, nil
}

func (a *GoTrueAuth) SignOut(ctx context.Context, accessToken string) error {
	if err := a.client.WithToken(accessToken).Logout(); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}

func (a *GoTrueAuth) UserFromToken(ctx context.Context, accessToken string) (*model.AuthUser, error) {
	resp, err := a.client.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session user: %w", err)
	}
	return &model.AuthUser{
		ID:    resp.ID.String(),
		Email: resp.Email,
	}, nil
}
