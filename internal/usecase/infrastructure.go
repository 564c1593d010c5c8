package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
)

type ImagesInfra interface {
	Upload(ctx context.Context, file domain.ImageFile, folder string) (string, error)
	// Owns сообщает, принадлежит ли URL хранилищу каталога.
	Owns(url string) bool
	// CleanupImages удаляет изображения в фоне, ошибки только логируются.
	CleanupImages(urls []string)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.CatalogEvent) error
}

// TxManager выполняет fn в одной транзакции хранилища.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Compare(hash []byte, password string) error
}

// Authenticator выпускает и проверяет токены доступа администратора.
type Authenticator interface {
	Issue(admin *domain.Admin) (*Token, error)
	Parse(token string) (*Claims, error)
}

// noopPublisher используется, когда шина событий не настроена.
type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, domain.CatalogEvent) error { return nil }

// NoopPublisher возвращает издателя, который отбрасывает события.
func NoopPublisher() EventPublisher { return noopPublisher{} }
