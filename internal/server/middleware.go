package server

import (
	"net/http"
	"strings"
)

// SessionCookieName is the cookie carrying the provider access token.
const SessionCookieName = "sb-access-token"

const loginPath = "/auth"

var protectedPrefixes = []string{"/dashboard"}

// Protected reports whether a path belongs to the guarded route surface.
func Protected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RouteGuard redirects requests to guarded paths when the session cookie is
// absent. It only checks presence; token validation belongs to the auth
// provider.
func RouteGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Protected(r.URL.Path) {
			if _, err := r.Cookie(SessionCookieName); err != nil {
				http.Redirect(w, r, loginPath, http.StatusTemporaryRedirect)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
