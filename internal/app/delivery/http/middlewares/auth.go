package middlewares

import (
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/exceptions"
	"caps-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Authenticate parses the bearer token, rejects revoked tokens and attaches
// the resulting principal to the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix)
		principal, err := utils.ParsePrincipalJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		revokedKey := fmt.Sprintf(constvars.RedisRevokedTokenKeyFormat, principal.TokenID)
		revoked, err := m.RedisRepository.Get(r.Context(), revokedKey)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if revoked != "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenRevoked(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PRINCIPAL_KEY, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
