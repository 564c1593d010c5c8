package auth

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTAuthenticator_IssueAndParse(t *testing.T) {
	a := NewJWTAuthenticator("secret", "bsb-catalog", time.Hour)
	admin := &domain.Admin{ID: "admin-1", Email: "admin@bsb.test"}

	token, err := a.Issue(admin)
	require.NoError(t, err)
	assert.NotEmpty(t, token.ID)

	claims, err := a.Parse(token.Value)
	require.NoError(t, err)
	assert.Equal(t, token.ID, claims.TokenID)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "admin@bsb.test", claims.Email)
	assert.WithinDuration(t, token.ExpiresAt, claims.ExpiresAt, time.Second)
}

func TestJWTAuthenticator_Rejects(t *testing.T) {
	a := NewJWTAuthenticator("secret", "bsb-catalog", time.Hour)
	admin := &domain.Admin{ID: "admin-1", Email: "admin@bsb.test"}

	other := NewJWTAuthenticator("other-secret", "bsb-catalog", time.Hour)
	foreign, err := other.Issue(admin)
	require.NoError(t, err)
	_, err = a.Parse(foreign.Value)
	assert.ErrorIs(t, err, e.ErrUnauthorized)

	expired := NewJWTAuthenticator("secret", "bsb-catalog", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Issue(admin)
	require.NoError(t, err)
	_, err = a.Parse(old.Value)
	assert.ErrorIs(t, err, e.ErrUnauthorized)

	_, err = a.Parse("garbage")
	assert.ErrorIs(t, err, e.ErrUnauthorized)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("rahasia")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "rahasia"))
	assert.Error(t, h.Compare(hash, "salah"))
}

func TestMemoryDenylist_Expires(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := NewMemoryDenylist()
	d.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Minute))
	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}
