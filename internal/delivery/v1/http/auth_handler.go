package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

// login
//
//	@Summary		Вход администратора
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest	true	"Учетные данные"
//	@Success		200		{object}	LoginResponse
//	@Failure		401		{object}	ErrorResponse	"Email atau password salah"
//	@Router			/auth/login [post]
func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	token, err := a.authUsecase.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		a.logger.Warnf("login failed for %q: %v", req.Email, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, LoginResponse{Token: token.Value, ExpiresAt: token.ExpiresAt})
}

// logout
//
//	@Summary		Выход администратора
//	@Description	Отзывает текущий токен до истечения его срока
//	@Tags			auth
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Router			/auth/logout [post]
func (a *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	if err := a.authUsecase.SignOut(r.Context(), token); err != nil {
		a.logger.Warnf("logout failed: %v", err)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// me
//
//	@Summary	Текущий администратор
//	@Tags		auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/admin/me [get]
func (a *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthorized)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]string{
		"id":    claims.AdminID,
		"email": claims.Email,
	})
}
