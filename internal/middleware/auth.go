package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tylerhq/tyler-go/internal/crypto"
)

type contextKey string

const userIDKey contextKey = "userID"

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header and annotates the request context with the
// authenticated account ID. Rejections carry one of three reasons:
// missing, invalid, or expired credential.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if authHeader == "" || !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing credential")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				reason := "invalid credential"
				if errors.Is(err, crypto.ErrTokenExpired) {
					reason = "expired credential"
				}
				writeJSONError(w, http.StatusUnauthorized, reason)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated account ID injected by
// JWTAuth. Handlers behind the gate treat it as ground truth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
