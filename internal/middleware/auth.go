package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/token"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

// Key to store the caller identity in the request context
type key int

const CallerKey key = 0

// RequireIdentity returns middleware that requires a valid identity token on
// the request and stores the verified identity in the request context.
func RequireIdentity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := extractCaller(r)
			if err != nil {
				utils.WriteError(w, domain.ErrUnauthenticated)
				return
			}
			ctx := context.WithValue(r.Context(), CallerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractCaller pulls the bearer token from the Authorization header and
// verifies it.
func extractCaller(r *http.Request) (domain.Identity, error) {
	jwtStr, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || jwtStr == "" {
		return domain.Identity{}, errNoToken
	}
	return token.Verify(jwtStr)
}

var errNoToken = errorString("no token")

type errorString string

func (e errorString) Error() string { return string(e) }

// RequireOperator returns middleware that gates an endpoint behind the shared
// operator token. An empty configured token disables the gated endpoints
// outright.
func RequireOperator(operatorToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get("X-Operator-Token")
			if operatorToken == "" || presented == "" ||
				subtle.ConstantTimeCompare([]byte(presented), []byte(operatorToken)) != 1 {
				utils.WriteError(w, domain.ErrInvalidOperatorToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CallerFromContext retrieves the verified caller identity from the request
// context.
func CallerFromContext(r *http.Request) (domain.Identity, bool) {
	caller, ok := r.Context().Value(CallerKey).(domain.Identity)
	return caller, ok
}
