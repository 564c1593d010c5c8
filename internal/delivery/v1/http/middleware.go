package http

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

type claimsKey struct{}

// ClaimsFromCtx возвращает данные токена администратора, проверенного AdminOnly.
func ClaimsFromCtx(ctx context.Context) (*usecase.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*usecase.Claims)
	return claims, ok
}

// AdminOnly пропускает запрос только с действующим Bearer-токеном администратора.
func AdminOnly(authUC usecase.AuthUC, logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				WriteError(w, e.ErrUnauthorized)
				return
			}

			claims, err := authUC.Authenticate(r.Context(), token)
			if err != nil {
				logger.Debugf("%s %s rejected: %v", r.Method, r.URL.Path, err)
				WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
