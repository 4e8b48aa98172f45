package middleware

import (
	"crypto/ed25519"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/token"
)

func TestRequireIdentity(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	id, err := domain.IdentityFromBytes(pub)
	require.NoError(t, err)

	valid, err := token.Sign(priv, time.Hour)
	require.NoError(t, err)
	expired, err := token.Sign(priv, -time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectCaller   bool
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, true},
		{"no header", "", http.StatusUnauthorized, false},
		{"wrong scheme", "Token " + valid, http.StatusUnauthorized, false},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized, false},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/v1/boards", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			var gotCaller domain.Identity
			var sawCaller bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCaller, sawCaller = CallerFromContext(r)
			})

			RequireIdentity()(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectCaller, sawCaller)
			if tt.expectCaller {
				assert.Equal(t, id, gotCaller)
			}
		})
	}
}

func TestRequireOperator(t *testing.T) {
	tests := []struct {
		name           string
		configured     string
		presented      string
		expectedStatus int
	}{
		{"matching token", "s3cret", "s3cret", http.StatusOK},
		{"wrong token", "s3cret", "nope", http.StatusForbidden},
		{"missing header", "s3cret", "", http.StatusForbidden},
		{"endpoint disabled when unconfigured", "", "", http.StatusForbidden},
		{"endpoint disabled even with a header", "", "anything", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/v1/accounts/credit", nil)
			if tt.presented != "" {
				req.Header.Set("X-Operator-Token", tt.presented)
			}
			rr := httptest.NewRecorder()

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			RequireOperator(tt.configured)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, called)
		})
	}
}
