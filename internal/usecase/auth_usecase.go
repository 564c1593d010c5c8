package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/DRSN-tech/catalog-backend/pkg/slug"
)

// AuthUseCase реализует вход и выход администраторов.
type AuthUseCase struct {
	adminRepo AdminRepository
	tokenRepo TokenRepository
	auth      Authenticator
	hasher    PasswordHasher
	logger    logger.Logger
	now       func() time.Time
}

func NewAuthUC(adminRepo AdminRepository, tokenRepo TokenRepository, auth Authenticator, hasher PasswordHasher, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		adminRepo: adminRepo,
		tokenRepo: tokenRepo,
		auth:      auth,
		hasher:    hasher,
		logger:    logger,
		now:       time.Now,
	}
}

func invalidCredentials(err error) error {
	return e.NewPublic(err, "Email atau password salah")
}

// SignIn проверяет пароль администратора и выпускает токен доступа.
// Неизвестный email и неверный пароль неотличимы для вызывающего.
func (a *AuthUseCase) SignIn(ctx context.Context, email, password string) (*Token, error) {
	const op = "AuthUseCase.SignIn"

	admin, err := a.adminRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, e.ErrAdminNotFound) {
			return nil, invalidCredentials(e.Wrap(op, e.ErrInvalidCredentials))
		}
		return nil, e.Wrap(op, err)
	}

	if err := a.hasher.Compare(admin.PasswordHash, password); err != nil {
		return nil, invalidCredentials(e.Wrap(op, e.ErrInvalidCredentials))
	}

	token, err := a.auth.Issue(admin)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.logger.Infof("admin %s signed in", admin.Email)
	return token, nil
}

// SignOut отзывает токен до истечения его срока действия.
func (a *AuthUseCase) SignOut(ctx context.Context, token string) error {
	const op = "AuthUseCase.SignOut"

	claims, err := a.auth.Parse(token)
	if err != nil {
		return e.Wrap(op, err)
	}

	ttl := claims.ExpiresAt.Sub(a.now())
	if ttl <= 0 {
		return nil
	}

	if err := a.tokenRepo.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

// Authenticate проверяет подпись и срок токена, а также что он не отозван.
func (a *AuthUseCase) Authenticate(ctx context.Context, token string) (*Claims, error) {
	const op = "AuthUseCase.Authenticate"

	claims, err := a.auth.Parse(token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	revoked, err := a.tokenRepo.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if revoked {
		return nil, e.Wrap(op, e.ErrTokenRevoked)
	}

	return claims, nil
}

// EnsureAdmin создает администратора, если учетной записи с таким email еще нет.
func (a *AuthUseCase) EnsureAdmin(ctx context.Context, email, password string) error {
	const op = "AuthUseCase.EnsureAdmin"

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	_, err := a.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, e.ErrAdminNotFound) {
		return e.Wrap(op, err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return e.Wrap(op, err)
	}

	admin := &domain.Admin{
		ID:           slug.NewID(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC().Truncate(time.Microsecond),
	}
	if err := a.adminRepo.Create(ctx, admin); err != nil {
		return e.Wrap(op, err)
	}

	a.logger.Infof("bootstrap admin %s created", email)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
