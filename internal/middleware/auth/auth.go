// Package auth guards API routes with bearer tokens.
package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	tokens "cakue/internal/auth"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// Verifier checks a raw bearer token.
type Verifier interface {
	Verify(token string) (tokens.Claims, error)
}

// Middleware requires "Authorization: Bearer <token>". A missing token is
// 401 and a token that fails verification is 403.
func Middleware(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "Access token required")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				slog.DebugContext(r.Context(), "Rejected bearer token",
					"component", "auth",
					"path", r.URL.Path,
					"error", err)
				writeError(w, http.StatusForbidden, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// WithClaims stores verified claims on ctx.
func WithClaims(ctx context.Context, claims tokens.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims stored by Middleware.
func ClaimsFromContext(ctx context.Context) (tokens.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(tokens.Claims)
	return claims, ok
}

// UserIDFromContext returns the authenticated user id, or 0.
func UserIDFromContext(ctx context.Context) int64 {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return 0
	}
	return claims.UserID
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
