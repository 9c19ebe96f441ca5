package adapthttp

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Tarsisbs/Backend-APP-TCC/internal/domain"
)

type contextKey string

const claimContextKey contextKey = "claim"

var (
	// ErrMissingToken indicates that no Authorization header was sent.
	ErrMissingToken = errors.New("missing token")
	// ErrMalformedHeader indicates an Authorization header that is not
	// exactly two space-separated parts.
	ErrMalformedHeader = errors.New("malformed authorization header")
)

// tokenFromHeader extracts the token from an Authorization header value.
// The value must be exactly two space-separated parts; the scheme label is
// not inspected, matching what existing clients send ("Bearer x", "Token x"
// and even "anything x" all pass).
func tokenFromHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 {
		return "", ErrMalformedHeader
	}
	return parts[1], nil
}

// requireAuth is the access gate for protected routes: it extracts and
// verifies the session token and stores the claim in the request context.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokenFromHeader(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Não autorizado")
			return
		}

		claim, err := s.tokens.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Token inválido")
			return
		}

		ctx := context.WithValue(r.Context(), claimContextKey, claim)
		next(w, r.WithContext(ctx))
	}
}

// claimFromContext returns the verified claim stored by requireAuth.
func claimFromContext(ctx context.Context) (*domain.Claim, bool) {
	claim, ok := ctx.Value(claimContextKey).(*domain.Claim)
	return claim, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs method, path, status and duration for each request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
