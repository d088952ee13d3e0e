package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// usernameKey is the context key under which the authenticated username is
// stored. Unexported struct type so no other package can collide with it.
type usernameKey struct{}

// UsernameFromContext returns the authenticated username placed in the
// context by NewAuthHandler, or "" when the request was not authenticated.
func UsernameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey{}).(string)
	return name
}

// NewAuthHandler returns a middleware that requires a valid Bearer token
// signed with secret. Requests without one are rejected with 401; the token
// subject is stored in the request context for downstream handlers.
func NewAuthHandler(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return secret, nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil {
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			sub, _ := claims["sub"].(string)
			ctx := context.WithValue(r.Context(), usernameKey{}, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeUnauthorized writes a 401 in the same error envelope the handlers use.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": "unauthorized", "message": message},
	})
}
