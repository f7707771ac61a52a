package server

import (
	"context"
	"encoding/json"
	"net/http"

	"fintrack/internal/config"
	"fintrack/internal/model"
)

// AuthService is what the auth handlers need from the auth flow.
type AuthService interface {
	SignUp(ctx context.Context, email, password, confirmPassword string) (*model.Session, error)
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	UserFromToken(ctx context.Context, accessToken string) (*model.AuthUser, error)
}

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type credentialsRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type sessionResponse struct {
	Message         string `json:"message"`
	RedirectTo      string `json:"redirect_to"`
	RedirectAfterMS int    `json:"redirect_after_ms"`
}

// Navigation to the dashboard is delayed client-side after a successful auth
// call; the delays mirror the original UX.
const (
	signUpRedirectDelayMS = 1500
	signInRedirectDelayMS = 1000
)

// Landing answers GET /auth so the guard has somewhere to redirect to.
func (h *AuthHandler) Landing(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "sign in at POST /auth/signin or create an account at POST /auth/signup",
	})
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.SignUp(r.Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		respondError(w, log, err)
		return
	}

	setSessionCookie(w, session.AccessToken, session.ExpiresIn)
	log.WithField("user_id", session.UserID).Info("Account created")
	config.JSON(w, http.StatusCreated, sessionResponse{
		Message:         "account created",
		RedirectTo:      "/dashboard",
		RedirectAfterMS: signUpRedirectDelayMS,
	})
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, log, err)
		return
	}

	setSessionCookie(w, session.AccessToken, session.ExpiresIn)
	config.JSON(w, http.StatusOK, sessionResponse{
		Message:         "signed in",
		RedirectTo:      "/dashboard",
		RedirectAfterMS: signInRedirectDelayMS,
	})
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.service.SignOut(r.Context(), cookie.Value); err != nil {
			log.WithError(err).Warn("Provider sign-out failed")
		}
	}

	clearSessionCookie(w)
	config.JSON(w, http.StatusOK, map[string]string{
		"message":     "signed out",
		"redirect_to": loginPath,
	})
}
