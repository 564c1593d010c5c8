package http

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/form"
	"github.com/DRSN-tech/catalog-backend/internal/listing"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type MockCatalogUC struct {
	mock.Mock
}

func (m *MockCatalogUC) category(args mock.Arguments) (*domain.Category, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCatalogUC) product(args mock.Arguments) (*domain.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogUC) products(args mock.Arguments) ([]*domain.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockCatalogUC) AddCategory(ctx context.Context, in form.CategoryForm) (*domain.Category, error) {
	return m.category(m.Called(ctx, in))
}

func (m *MockCatalogUC) UpdateCategory(ctx context.Context, id string, patch usecase.CategoryPatch) (*domain.Category, error) {
	return m.category(m.Called(ctx, id, patch))
}

func (m *MockCatalogUC) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogUC) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	return m.category(m.Called(ctx, id))
}

func (m *MockCatalogUC) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return m.category(m.Called(ctx, slug))
}

func (m *MockCatalogUC) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCatalogUC) AddProduct(ctx context.Context, in form.ProductForm) (*domain.Product, error) {
	return m.product(m.Called(ctx, in))
}

func (m *MockCatalogUC) UpdateProduct(ctx context.Context, id string, patch usecase.ProductPatch) (*domain.Product, error) {
	return m.product(m.Called(ctx, id, patch))
}

func (m *MockCatalogUC) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogUC) TogglePublish(ctx context.Context, id string) (*domain.Product, error) {
	return m.product(m.Called(ctx, id))
}

func (m *MockCatalogUC) InsertContentImages(ctx context.Context, req usecase.InsertImagesReq) (*domain.Product, error) {
	return m.product(m.Called(ctx, req))
}

func (m *MockCatalogUC) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return m.product(m.Called(ctx, id))
}

func (m *MockCatalogUC) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return m.product(m.Called(ctx, slug))
}

func (m *MockCatalogUC) GetPublishedProduct(ctx context.Context, slug string) (*domain.Product, error) {
	return m.product(m.Called(ctx, slug))
}

func (m *MockCatalogUC) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return m.products(m.Called(ctx))
}

func (m *MockCatalogUC) AdminProducts(ctx context.Context, state *listing.State) (listing.Page[*domain.Product], error) {
	args := m.Called(ctx, state)
	return args.Get(0).(listing.Page[*domain.Product]), args.Error(1)
}

func (m *MockCatalogUC) ProductsByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	return m.products(m.Called(ctx, categoryID))
}

func (m *MockCatalogUC) ProductsByType(ctx context.Context, t domain.ProductType) ([]*domain.Product, error) {
	return m.products(m.Called(ctx, t))
}

func (m *MockCatalogUC) SearchProducts(ctx context.Context, query, categoryID string) ([]*domain.Product, error) {
	return m.products(m.Called(ctx, query, categoryID))
}

func (m *MockCatalogUC) PublishedCount(ctx context.Context, categoryID string) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogUC) RelatedProducts(ctx context.Context, product *domain.Product) ([]*domain.Product, error) {
	return m.products(m.Called(ctx, product))
}

func (m *MockCatalogUC) Dashboard(ctx context.Context) (*usecase.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DashboardStats), args.Error(1)
}

type MockAuthUC struct {
	mock.Mock
}

func (m *MockAuthUC) SignIn(ctx context.Context, email, password string) (*usecase.Token, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Token), args.Error(1)
}

func (m *MockAuthUC) SignOut(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockAuthUC) Authenticate(ctx context.Context, token string) (*usecase.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Claims), args.Error(1)
}

func (m *MockAuthUC) EnsureAdmin(ctx context.Context, email, password string) error {
	return m.Called(ctx, email, password).Error(0)
}

type MockImages struct {
	mock.Mock
}

func (m *MockImages) Upload(ctx context.Context, file domain.ImageFile, folder string) (string, error) {
	args := m.Called(ctx, file, folder)
	return args.String(0), args.Error(1)
}

func (m *MockImages) Owns(url string) bool {
	return m.Called(url).Bool(0)
}

func (m *MockImages) CleanupImages(urls []string) {
	m.Called(urls)
}
