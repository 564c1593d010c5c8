package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	// Delete удаляет категорию вместе со всеми ее продуктами.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	// FindBySlug возвращает все категории со slug, упорядоченные по
	// order_index, created_at, id.
	FindBySlug(ctx context.Context, slug string) ([]*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Count(ctx context.Context) (int, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) ([]*domain.Product, error)
	// List возвращает продукты по запросу, упорядоченные по order_index, created_at, id.
	List(ctx context.Context, q ProductQuery) ([]*domain.Product, error)
	Count(ctx context.Context, q ProductQuery) (int, error)
	// RecentlyUpdated возвращает продукты по убыванию updated_at.
	RecentlyUpdated(ctx context.Context, limit int) ([]*domain.Product, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

// ImageRepository хранит объекты изображений. Upload возвращает публичный URL объекта.
type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type CacheRepository interface {
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
	SetProduct(ctx context.Context, product *domain.Product) error
	DeleteProducts(ctx context.Context, slugs ...string) error
	GetCategories(ctx context.Context) ([]*domain.Category, error)
	SetCategories(ctx context.Context, categories []*domain.Category) error
	DeleteCategories(ctx context.Context) error
}

type TokenRepository interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
