package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/form"
	"github.com/DRSN-tech/catalog-backend/internal/listing"
)

type CatalogUC interface {
	AddCategory(ctx context.Context, in form.CategoryForm) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	GetCategoryByID(ctx context.Context, id string) (*domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	AddProduct(ctx context.Context, in form.ProductForm) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	TogglePublish(ctx context.Context, id string) (*domain.Product, error)
	InsertContentImages(ctx context.Context, req InsertImagesReq) (*domain.Product, error)

	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetPublishedProduct(ctx context.Context, slug string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	AdminProducts(ctx context.Context, state *listing.State) (listing.Page[*domain.Product], error)
	ProductsByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error)
	ProductsByType(ctx context.Context, t domain.ProductType) ([]*domain.Product, error)
	SearchProducts(ctx context.Context, query, categoryID string) ([]*domain.Product, error)
	PublishedCount(ctx context.Context, categoryID string) (int, error)
	RelatedProducts(ctx context.Context, product *domain.Product) ([]*domain.Product, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type AuthUC interface {
	SignIn(ctx context.Context, email, password string) (*Token, error)
	SignOut(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*Claims, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}
