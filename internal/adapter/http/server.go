package adapthttp

import (
	"net/http"

	"github.com/Tarsisbs/Backend-APP-TCC/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth     *app.AuthService
	listings *app.ListingService
	tokens   *app.TokenCodec
	env      string
	sso      *SSOConfig
}

// New creates a Server wired to the given application services. sso may be
// nil, in which case the SSO routes respond 404.
func New(auth *app.AuthService, listings *app.ListingService, tokens *app.TokenCodec, env string, sso *SSOConfig) *Server {
	return &Server{auth: auth, listings: listings, tokens: tokens, env: env, sso: sso}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)

	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/me", s.requireAuth(s.handleMe))
	mux.HandleFunc("/usuarios/me", s.requireAuth(s.handleProfile))
	mux.HandleFunc("/perfil", s.requireAuth(s.handleProfile))

	mux.HandleFunc("/api/noticias", s.handleNews)
	mux.HandleFunc("/calendario", s.handleCalendar)
	mux.HandleFunc("/fluxo_caixa", s.handleCashFlow)

	mux.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	mux.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	return s.loggingMiddleware(mux)
}
