package http

import (
	"context"
	"net/http"

	"neoauth/internal/domain"
	"neoauth/internal/service"
)

type principal struct {
	UserID int64
	Email  string
}

type principalKey struct{}

// PrincipalFrom returns the authenticated caller stored by Authenticate.
func PrincipalFrom(ctx context.Context) (principal, bool) {
	p, ok := ctx.Value(principalKey{}).(principal)
	return p, ok
}

// UserDirectory is the slice of the user store the gate needs for admin
// checks. Role changes take effect on the next request, so the check reads
// the current record instead of trusting the token.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type AuthGate struct {
	tokens service.TokenService
	users  UserDirectory
}

func NewAuthGate(tokens service.TokenService, users UserDirectory) *AuthGate {
	return &AuthGate{tokens: tokens, users: users}
}

// Authenticate requires a valid session token in the X-Auth-Token header and
// stores the caller's identity in the request context.
func (g *AuthGate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-Auth-Token")
		if raw == "" {
			writeError(w, http.StatusUnauthorized, "No token provided")
			return
		}
		claims, err := g.tokens.Verify(raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), principalKey{}, principal{
			UserID: claims.UserID,
			Email:  claims.Email,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run inside Authenticate.
func (g *AuthGate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "No token provided")
			return
		}
		user, err := g.users.GetByID(r.Context(), p.UserID)
		if err != nil || user.Role != domain.RoleAdmin {
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
