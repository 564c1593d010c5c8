package redis

import (
	"context"
	"time"

	"github.com/DRSN-tech/catalog-backend/pkg/clients"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// TokenRepo хранит отозванные токены доступа до истечения их срока.
type TokenRepo struct {
	client *clients.RedisClient
}

func NewTokenRepo(client *clients.RedisClient) *TokenRepo {
	return &TokenRepo{client: client}
}

func (t *TokenRepo) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := t.client.Client.Set(ctx, revokedKey(tokenID), 1, ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

func (t *TokenRepo) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := t.client.Client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}
	return n > 0, nil
}

func revokedKey(tokenID string) string {
	return "catalog:revoked:" + tokenID
}
