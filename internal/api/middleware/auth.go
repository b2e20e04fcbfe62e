package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/varela/foro-api/internal/domain"
	"github.com/varela/foro-api/internal/service"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated caller attached to the request context.
// It deliberately wraps the storage entity instead of having the entity
// implement any framework interface.
type Principal struct {
	User        *domain.User
	Authorities []string
}

// Authenticate establishes the caller's identity from a bearer token. It
// never rejects the request itself: a missing or unverifiable token leaves
// the request anonymous, and route-level RequireAuth decides whether that
// is acceptable.
func Authenticate(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))

			email, err := authService.VerifySubject(token)
			if err != nil {
				log.Printf("ERROR [middleware.Authenticate] token verification failed: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			user, err := authService.GetUserByEmail(r.Context(), email)
			if err != nil {
				log.Printf("ERROR [middleware.Authenticate] unknown subject %q: %v", email, err)
				next.ServeHTTP(w, r)
				return
			}

			principal := &Principal{
				User:        user,
				Authorities: []string{"ROLE_USER"},
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that carry no authenticated principal.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetPrincipal(r.Context()); !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetPrincipal(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(principalKey).(*Principal)
	return principal, ok
}
