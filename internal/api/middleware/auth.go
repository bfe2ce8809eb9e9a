package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/example/products-slider/internal/auth"
)

// AccessTokenCookie is the cookie the admin login sets for the shortcode
// builder pages.
const AccessTokenCookie = "access_token"

const bearerPrefix = "Bearer "

// TokenValidator turns a signed admin token into its claims.
type TokenValidator interface {
	ValidateAccessToken(token string) (*auth.Claims, error)
}

type adminKey struct{}

// AdminOnly lets a request through only when it carries a valid token for an
// admin. The claims are stored on the request context for AdminFromContext.
func AdminOnly(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				writeError(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateAccessToken(token)
			if err != nil {
				writeError(w, err.Error(), http.StatusUnauthorized)
				return
			}
			if claims.Role != auth.RoleAdmin {
				log.Printf("[Auth] %s with role %q denied %s", claims.Email, claims.Role, r.URL.Path)
				writeError(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), claims)))
		})
	}
}

// TokenFromRequest returns the session cookie when set, else a bearer token.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimSpace(h[len(bearerPrefix):])
	}
	return ""
}

func WithAdmin(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, adminKey{}, claims)
}

// AdminFromContext returns the admin that AdminOnly let through.
func AdminFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(adminKey{}).(*auth.Claims)
	return claims, ok && claims != nil
}

func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
