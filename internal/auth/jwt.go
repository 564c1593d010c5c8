package auth

import (
	"fmt"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = 12 * time.Hour

// JWTAuthenticator выпускает и проверяет токены доступа администраторов (HS256).
type JWTAuthenticator struct {
	secret []byte
	iss    string
	ttl    time.Duration
	now    func() time.Time
}

type adminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewJWTAuthenticator(secret, iss string, ttl time.Duration) *JWTAuthenticator {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTAuthenticator{secret: []byte(secret), iss: iss, ttl: ttl, now: time.Now}
}

// Issue выпускает токен доступа с уникальным jti.
func (a *JWTAuthenticator) Issue(admin *domain.Admin) (*usecase.Token, error) {
	now := a.now()
	expiresAt := now.Add(a.ttl)
	id := uuid.NewString()

	claims := adminClaims{
		Email: admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   admin.ID,
			Issuer:    a.iss,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return nil, e.Wrap("JWTAuthenticator.Issue", err)
	}

	return &usecase.Token{Value: signed, ID: id, ExpiresAt: expiresAt}, nil
}

// Parse проверяет подпись, издателя и срок действия токена.
func (a *JWTAuthenticator) Parse(token string) (*usecase.Claims, error) {
	var claims adminClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(a.iss),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, e.Wrap(fmt.Sprintf("JWTAuthenticator.Parse: %v", err), e.ErrUnauthorized)
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, e.Wrap("JWTAuthenticator.Parse: missing jti or sub", e.ErrUnauthorized)
	}

	return &usecase.Claims{
		TokenID:   claims.ID,
		AdminID:   claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
