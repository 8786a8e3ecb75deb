package middleware

import (
	"context"
	"net/http"
	"strings"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/user"
	"hrsuite/internal/http/response"
	"hrsuite/internal/security"
)

type contextKey string

const (
	ContextTaxIDKey contextKey = "tax_id"
	ContextRoleKey  contextKey = "role"
)

type AuthMiddleware struct {
	jwt *security.JWTProvider
}

func NewAuthMiddleware(jwt *security.JWTProvider) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		claims, err := m.jwt.Parse(parts[1])
		if err != nil {
			response.Error(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), ContextTaxIDKey, claims.Subject)
		ctx = context.WithValue(ctx, ContextRoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole lets the request through when the caller holds any of the given
// roles.
func RequireRole(roles ...user.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			active, ok := r.Context().Value(ContextRoleKey).(user.Role)
			if !ok || active == "" {
				response.Error(w, common.NewError(common.CodeForbidden, "role not found", nil))
				return
			}
			for _, role := range roles {
				if active == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
		})
	}
}

func TaxIDFromContext(ctx context.Context) (string, bool) {
	taxID, ok := ctx.Value(ContextTaxIDKey).(string)
	return taxID, ok
}

func RoleFromContext(ctx context.Context) (user.Role, bool) {
	role, ok := ctx.Value(ContextRoleKey).(user.Role)
	return role, ok
}
