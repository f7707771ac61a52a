package server

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"fintrack/internal/config"
	"fintrack/internal/service"
)

type errorResponse struct {
	Error      string `json:"error"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// respondError maps the service error taxonomy onto status codes: validation
// failures are 400, provider rejections 401, remote store failures 502.
func respondError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	var validationErr *service.ValidationError
	var authErr *service.AuthError
	var dataErr *service.DataError

	switch {
	case errors.As(err, &validationErr):
		config.JSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
	case errors.As(err, &authErr):
		log.WithError(authErr).Warn("Auth provider rejected request")
		config.JSON(w, http.StatusUnauthorized, errorResponse{Error: authErr.Error()})
	case errors.As(err, &dataErr):
		log.WithError(dataErr).Error("Remote store request failed")
		config.JSON(w, http.StatusBadGateway, errorResponse{Error: dataErr.Error()})
	default:
		log.WithError(err).Error("Request failed")
		config.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
