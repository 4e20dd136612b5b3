package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tjwls11/diary111/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (string, error)
}

// Auth returns middleware that requires a valid bearer token. Requests
// without a token get 401; requests with a token that does not validate get
// 403. On success the authenticated user id is placed in the request context.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeAuthError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			userID, err := validator.Validate(token)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "invalid or expired token")
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
		"isSuccess": false,
		"message":   message,
	})
}
