package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/middleware/ratelimiter"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

// RateLimit returns middleware that limits request rate per key. getKey
// decides what counts as one caller for the route: the verified identity for
// mutations, the client IP for public reads.
func RateLimit(rl *ratelimiter.KeyedLimiter, getKey func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, err := getKey(r)
			if err != nil {
				utils.WriteError(w, err)
				return
			}
			if !rl.Allow(key) {
				utils.WriteError(w, domain.ErrRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetCallerKey keys the limiter by the identity verified by RequireIdentity.
func GetCallerKey(r *http.Request) (string, error) {
	caller, ok := CallerFromContext(r)
	if !ok {
		return "", domain.ErrUnauthenticated
	}
	return "id_" + caller.String(), nil
}

// GetIPKey keys the limiter by client IP. Only RemoteAddr is trusted;
// forwarded headers are spoofable without a reverse proxy in front.
func GetIPKey(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port, use it directly
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid client address: %s", ip)
	}

	return "ip_" + ip, nil
}
