package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the route surface: a redirect dispatcher at /, the auth
// endpoints under /auth, and the guarded dashboard under /dashboard.
func NewRouter(auth *AuthHandler, dashboard *DashboardHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RouteGuard)

	r.Get("/", rootRedirect)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/", auth.Landing)
		r.Post("/signup", auth.SignUp)
		r.Post("/signin", auth.SignIn)
		r.Post("/signout", auth.SignOut)
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", dashboard.Summary)
		r.Post("/transactions", dashboard.CreateTransaction)
		r.Post("/goals", dashboard.CreateGoal)
		r.Get("/chart.png", dashboard.ExpenseChart)
	})

	return r
}

// rootRedirect sends signed-in visitors to the dashboard and everyone else to
// the login page.
func rootRedirect(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(SessionCookieName); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusTemporaryRedirect)
		return
	}
	http.Redirect(w, r, loginPath, http.StatusTemporaryRedirect)
}
