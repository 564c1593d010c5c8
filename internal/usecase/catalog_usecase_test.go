package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/form"
	"github.com/DRSN-tech/catalog-backend/internal/listing"
	"github.com/DRSN-tech/catalog-backend/internal/repository/bolt"
	"github.com/DRSN-tech/catalog-backend/internal/richtext"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storageBase = "http://storage.local/catalog-images/"

// fakeImages имитирует хранилище изображений: синхронно фиксирует загрузки и очистку.
type fakeImages struct {
	mu       sync.Mutex
	n        int
	failOn   string
	uploaded []string
	cleaned  []string

	// duringUpload вызывается из Upload до записи URL
	duringUpload func()
}

func (f *fakeImages) Upload(_ context.Context, file domain.ImageFile, folder string) (string, error) {
	if f.duringUpload != nil {
		f.duringUpload()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != "" && file.Name == f.failOn {
		return "", errors.New("storage unavailable")
	}
	f.n++
	url := fmt.Sprintf("%s%s/%d-%s", storageBase, folder, f.n, file.Name)
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeImages) Owns(url string) bool {
	return strings.HasPrefix(url, storageBase)
}

func (f *fakeImages) CleanupImages(urls []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaned = append(f.cleaned, urls...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.CatalogEvent
}

func (r *recordingPublisher) Publish(_ context.Context, ev domain.CatalogEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingPublisher) kinds() []domain.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.EventKind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

type fixture struct {
	uc     *usecase.CatalogUseCase
	images *fakeImages
	events *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithCache(t, nil)
}

func newFixtureWithCache(t *testing.T, cache usecase.CacheRepository) *fixture {
	t.Helper()
	store, err := bolt.Open(&cfg.BoltCfg{Path: filepath.Join(t.TempDir(), "catalog.db"), Timeout: time.Second}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	images := &fakeImages{}
	events := &recordingPublisher{}
	uc := usecase.NewCatalogUC(
		bolt.NewCategoryRepo(store),
		bolt.NewProductRepo(store),
		bolt.NewTxManager(),
		images,
		cache,
		events,
		logger.NewNop(),
	)
	return &fixture{uc: uc, images: images, events: events}
}

func (f *fixture) category(t *testing.T, name string, order int) *domain.Category {
	t.Helper()
	in := form.NewCategoryForm()
	in.Name = name
	in.ThumbnailURL = storageBase + "categories/" + strings.ToLower(name) + ".png"
	in.OrderIndex = order
	c, err := f.uc.AddCategory(context.Background(), in)
	require.NoError(t, err)
	return c
}

func (f *fixture) product(t *testing.T, categoryID, title string, mutate ...func(*form.ProductForm)) *domain.Product {
	t.Helper()
	in := form.NewProductForm()
	in.CategoryID = categoryID
	in.Title = title
	in.ThumbnailURL = storageBase + "products/" + strings.ToLower(strings.ReplaceAll(title, " ", "-")) + ".png"
	in.KenaliProduk = "<p>" + title + "</p>"
	in.ShortDescription = "Layanan " + title
	in.IsPublished = true
	for _, m := range mutate {
		m(&in)
	}
	p, err := f.uc.AddProduct(context.Background(), in)
	require.NoError(t, err)
	return p
}

func ptr[T any](v T) *T { return &v }

func publicMessage(t *testing.T, err error) string {
	t.Helper()
	var pub interface{ PublicMessage() string }
	require.True(t, errors.As(err, &pub), "error %v has no public message", err)
	return pub.PublicMessage()
}

func TestAddCategory_DerivesSlugAndDefaults(t *testing.T) {
	f := newFixture(t)

	c := f.category(t, "Kartu Kredit", 0)

	assert.Equal(t, "kartu-kredit", c.Slug)
	assert.Equal(t, domain.IconWallet, c.Icon)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, []domain.EventKind{domain.EventCategoryCreated}, f.events.kinds())
}

func TestAddCategory_Validation(t *testing.T) {
	f := newFixture(t)

	in := form.NewCategoryForm()
	in.Name = "   "
	in.ThumbnailURL = "x"
	_, err := f.uc.AddCategory(context.Background(), in)

	assert.ErrorIs(t, err, e.ErrValidation)
	assert.Equal(t, "Nama kategori wajib diisi", publicMessage(t, err))

	// thumbnail обязателен, как в форме админки
	in = form.NewCategoryForm()
	in.Name = "Tabungan"
	_, err = f.uc.AddCategory(context.Background(), in)
	assert.ErrorIs(t, err, e.ErrValidation)
	assert.Equal(t, "Thumbnail wajib diupload", publicMessage(t, err))

	all, err := f.uc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDuplicateCategoryNamesShareSlug(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	second := f.category(t, "Tabungan", 5)
	first := f.category(t, "Tabungan", 1)
	require.Equal(t, first.Slug, second.Slug)

	got, err := f.uc.GetCategoryBySlug(ctx, "tabungan")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	all, err := f.uc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tabungan", 0)
	oldThumb := c.ThumbnailURL

	updated, err := f.uc.UpdateCategory(ctx, c.ID, usecase.CategoryPatch{
		Name:         ptr("Tabungan Berjangka"),
		Icon:         ptr(domain.IconPiggyBank),
		ThumbnailURL: ptr(storageBase + "categories/new.png"),
	})
	require.NoError(t, err)

	assert.Equal(t, "tabungan-berjangka", updated.Slug)
	assert.Equal(t, domain.IconPiggyBank, updated.Icon)
	assert.True(t, updated.UpdatedAt.After(c.UpdatedAt))
	assert.Equal(t, []string{oldThumb}, f.images.cleaned)

	_, err = f.uc.UpdateCategory(ctx, "missing", usecase.CategoryPatch{Name: ptr("X")})
	assert.ErrorIs(t, err, e.ErrCategoryNotFound)
}

func TestUpdateCategory_NoChangesIsNoop(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Tabungan", 0)

	got, err := f.uc.UpdateCategory(context.Background(), c.ID, usecase.CategoryPatch{Name: ptr("Tabungan")})
	require.NoError(t, err)

	assert.Equal(t, c.UpdatedAt, got.UpdatedAt)
	assert.Equal(t, []domain.EventKind{domain.EventCategoryCreated}, f.events.kinds())
}

func TestDeleteCategory_CascadesAndCleansImages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	keep := f.category(t, "Kredit", 0)
	c := f.category(t, "Tabungan", 1)
	p1 := f.product(t, c.ID, "Tabungan Emas", func(in *form.ProductForm) {
		in.GalleryImages = []string{storageBase + "products/g1.png", "https://other.example/g2.png"}
		in.FiturUtama = `<p>a</p><img src="` + storageBase + `content/inline.png">`
	})
	p2 := f.product(t, c.ID, "Tabungan Pelajar")
	other := f.product(t, keep.ID, "KPR")

	require.NoError(t, f.uc.DeleteCategory(ctx, c.ID))

	_, err := f.uc.GetCategoryByID(ctx, c.ID)
	assert.ErrorIs(t, err, e.ErrCategoryNotFound)
	_, err = f.uc.GetProductByID(ctx, p1.ID)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	_, err = f.uc.GetProductByID(ctx, p2.ID)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	_, err = f.uc.GetProductByID(ctx, other.ID)
	assert.NoError(t, err)

	assert.ElementsMatch(t, []string{
		c.ThumbnailURL,
		p1.ThumbnailURL,
		storageBase + "products/g1.png",
		storageBase + "content/inline.png",
		p2.ThumbnailURL,
	}, f.images.cleaned)

	assert.ErrorIs(t, f.uc.DeleteCategory(ctx, c.ID), e.ErrCategoryNotFound)
}

func TestAddProduct_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tabungan", 0)

	in := form.NewProductForm()
	in.CategoryID = c.ID
	in.ThumbnailURL = "x"
	in.KenaliProduk = "<p>x</p>"
	_, err := f.uc.AddProduct(ctx, in)
	assert.Equal(t, "Judul produk wajib diisi", publicMessage(t, err))

	in.Title = "Tabungan Emas"
	in.KenaliProduk = "<p></p>"
	_, err = f.uc.AddProduct(ctx, in)
	assert.Equal(t, "Kenali Produk wajib diisi", publicMessage(t, err))

	in.KenaliProduk = "<p>x</p>"
	in.CategoryID = "missing"
	_, err = f.uc.AddProduct(ctx, in)
	assert.ErrorIs(t, err, e.ErrValidation)
	assert.Equal(t, "Kategori tidak ditemukan", publicMessage(t, err))
}

func TestAddProduct_ServiceContent(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Layanan", 0)

	p := f.product(t, c.ID, "Transfer Antar Bank", func(in *form.ProductForm) {
		in.Type = domain.ProductTypeService
		in.Persyaratan = "<ol><li>Login</li></ol>"
	})

	svc, ok := p.Content.(domain.ServiceContent)
	require.True(t, ok)
	assert.Equal(t, "<p>Transfer Antar Bank</p>", svc.Description)
	assert.Equal(t, "<ol><li>Login</li></ol>", svc.Steps)
	assert.Equal(t, "transfer-antar-bank", p.Slug)
}

func TestTogglePublishTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tabungan", 0)
	p := f.product(t, c.ID, "Tabungan Emas")

	once, err := f.uc.TogglePublish(ctx, p.ID)
	require.NoError(t, err)
	twice, err := f.uc.TogglePublish(ctx, p.ID)
	require.NoError(t, err)

	assert.False(t, once.IsPublished)
	assert.Equal(t, p.IsPublished, twice.IsPublished)
	assert.True(t, once.UpdatedAt.After(p.UpdatedAt))
	assert.True(t, twice.UpdatedAt.After(once.UpdatedAt))

	kinds := f.events.kinds()
	assert.Equal(t, []domain.EventKind{domain.EventProductUnpublished, domain.EventProductPublished}, kinds[len(kinds)-2:])
}

func TestUpdateProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tabungan", 0)
	p := f.product(t, c.ID, "Tabungan Emas", func(in *form.ProductForm) {
		in.GalleryImages = []string{storageBase + "products/g1.png", storageBase + "products/g2.png"}
	})

	t.Run("no changes", func(t *testing.T) {
		got, err := f.uc.UpdateProduct(ctx, p.ID, usecase.ProductPatch{Title: ptr(p.Title)})
		require.NoError(t, err)
		assert.Equal(t, p.UpdatedAt, got.UpdatedAt)
		assert.Empty(t, f.images.cleaned)
	})

	t.Run("superseded images cleaned", func(t *testing.T) {
		got, err := f.uc.UpdateProduct(ctx, p.ID, usecase.ProductPatch{
			Title:         ptr("Tabungan Emas Plus"),
			ThumbnailURL:  ptr(storageBase + "products/new.png"),
			GalleryImages: ptr([]string{storageBase + "products/g2.png"}),
		})
		require.NoError(t, err)

		assert.Equal(t, "tabungan-emas-plus", got.Slug)
		assert.ElementsMatch(t, []string{p.ThumbnailURL, storageBase + "products/g1.png"}, f.images.cleaned)
	})

	t.Run("invalid patch leaves product unchanged", func(t *testing.T) {
		_, err := f.uc.UpdateProduct(ctx, p.ID, usecase.ProductPatch{Title: ptr("  ")})
		assert.ErrorIs(t, err, e.ErrValidation)

		got, err := f.uc.GetProductByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Tabungan Emas Plus", got.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.uc.UpdateProduct(ctx, "missing", usecase.ProductPatch{Title: ptr("X")})
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})
}

func TestDeleteProduct_CleansAllImages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tabungan", 0)
	shared := storageBase + "content/shared.png"
	p := f.product(t, c.ID, "Tabungan Emas", func(in *form.ProductForm) {
		in.FeaturedImageURL = storageBase + "products/featured.png"
		in.Manfaat = `<img src="` + shared + `">`
		in.Risiko = `<p><img src="` + shared + `"></p>`
		in.YoutubeVideoURL = "https://www.youtube.com/watch?v=abc123"
	})

	require.NoError(t, f.uc.DeleteProduct(ctx, p.ID))

	assert.ElementsMatch(t, []string{p.ThumbnailURL, storageBase + "products/featured.png", shared}, f.images.cleaned)
	assert.ErrorIs(t, f.uc.DeleteProduct(ctx, p.ID), e.ErrProductNotFound)
}

func TestInsertContentImages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Layanan", 0)
	p := f.product(t, c.ID, "Mobile Banking", func(in *form.ProductForm) {
		in.Type = domain.ProductTypeService
		in.Persyaratan = "<p>Langkah pendaftaran</p>"
	})

	files := []richtext.StagedImage{
		{File: domain.ImageFile{Name: "a.png", ContentType: "image/png", Data: []byte{1}}, Caption: "A"},
		{File: domain.ImageFile{Name: "b.png", ContentType: "image/png", Data: []byte{2}}, Caption: ""},
		{File: domain.ImageFile{Name: "c.png", ContentType: "image/png", Data: []byte{3}}, Caption: "C"},
	}

	got, err := f.uc.InsertContentImages(ctx, usecase.InsertImagesReq{
		ProductID: p.ID,
		Field:     domain.FieldRequirements,
		Images:    files,
		Position:  -1,
	})
	require.NoError(t, err)

	steps := got.Content.(domain.ServiceContent).Steps
	doc, err := richtext.Parse(steps)
	require.NoError(t, err)
	images := doc.Images()
	require.Len(t, images, 3)
	assert.Equal(t, []string{"A", "Langkah 2", "C"}, []string{images[0].Alt, images[1].Alt, images[2].Alt})
	assert.True(t, strings.HasPrefix(steps, "<p>Langkah pendaftaran</p>"))
	assert.True(t, got.UpdatedAt.After(p.UpdatedAt))
}

func TestInsertContentImages_KeepsEditsMadeDuringUpload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Layanan", 0)
	p := f.product(t, c.ID, "Mobile Banking", func(in *form.ProductForm) {
		in.Type = domain.ProductTypeService
		in.Persyaratan = "<p>Langkah pendaftaran</p>"
	})

	edited := "<p>Langkah pendaftaran</p><p>Siapkan KTP</p>"
	f.images.duringUpload = func() {
		_, err := f.uc.UpdateProduct(ctx, p.ID, usecase.ProductPatch{Persyaratan: ptr(edited)})
		assert.NoError(t, err)
	}

	got, err := f.uc.InsertContentImages(ctx, usecase.InsertImagesReq{
		ProductID: p.ID,
		Field:     domain.FieldRequirements,
		Images: []richtext.StagedImage{
			{File: domain.ImageFile{Name: "a.png", ContentType: "image/png", Data: []byte{1}}, Caption: "A"},
		},
		Position: -1,
	})
	require.NoError(t, err)

	steps := got.Content.(domain.ServiceContent).Steps
	assert.True(t, strings.HasPrefix(steps, edited), steps)
	doc, err := richtext.Parse(steps)
	require.NoError(t, err)
	require.Len(t, doc.Images(), 1)
	assert.Equal(t, "A", doc.Images()[0].Alt)

	stored, err := f.uc.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, steps, stored.Content.(domain.ServiceContent).Steps)
}

func TestInsertContentImages_UploadFailureLeavesField(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tabungan", 0)
	p := f.product(t, c.ID, "Tabungan Emas")
	f.images.failOn = "b.png"

	_, err := f.uc.InsertContentImages(ctx, usecase.InsertImagesReq{
		ProductID: p.ID,
		Field:     domain.FieldOverview,
		Images: []richtext.StagedImage{
			{File: domain.ImageFile{Name: "a.png", ContentType: "image/png", Data: []byte{1}}},
			{File: domain.ImageFile{Name: "b.png", ContentType: "image/png", Data: []byte{2}}},
		},
		Position: -1,
	})
	require.Error(t, err)

	got, err := f.uc.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Content, got.Content)
	assert.Equal(t, p.UpdatedAt, got.UpdatedAt)
}

func TestInsertContentImages_RejectsFieldOfOtherType(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Layanan", 0)
	p := f.product(t, c.ID, "SMS Banking", func(in *form.ProductForm) { in.Type = domain.ProductTypeService })

	_, err := f.uc.InsertContentImages(context.Background(), usecase.InsertImagesReq{
		ProductID: p.ID,
		Field:     domain.FieldCosts,
		Images:    []richtext.StagedImage{{File: domain.ImageFile{Name: "a.png", ContentType: "image/png", Data: []byte{1}}}},
	})
	assert.ErrorIs(t, err, e.ErrInvalidContentKey)
}

func TestSearchProducts_MobileScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ebank := f.category(t, "E-Banking", 0)
	tabungan := f.category(t, "Tabungan", 1)

	mobile := f.product(t, ebank.ID, "Mobile Banking")
	f.product(t, tabungan.ID, "Tabungan Simpel", func(in *form.ProductForm) { in.ShortDescription = "Buka rekening via mobile" })
	f.product(t, ebank.ID, "Mobile Draft", func(in *form.ProductForm) { in.IsPublished = false })
	f.product(t, ebank.ID, "Internet Banking")

	got, err := f.uc.SearchProducts(ctx, "MOBILE", listing.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = f.uc.SearchProducts(ctx, "mobile", ebank.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mobile.ID, got[0].ID)

	n, err := f.uc.PublishedCount(ctx, ebank.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPublicReads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tabungan", 0)
	p := f.product(t, c.ID, "Tabungan Emas")
	draft := f.product(t, c.ID, "Tabungan Draft", func(in *form.ProductForm) { in.IsPublished = false })
	svc := f.product(t, c.ID, "Transfer", func(in *form.ProductForm) { in.Type = domain.ProductTypeService })

	got, err := f.uc.GetPublishedProduct(ctx, p.Slug)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = f.uc.GetPublishedProduct(ctx, draft.Slug)
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	related, err := f.uc.RelatedProducts(ctx, p)
	require.NoError(t, err)
	assert.Empty(t, related)

	byType, err := f.uc.ProductsByType(ctx, domain.ProductTypeService)
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, svc.ID, byType[0].ID)

	_, err = f.uc.ProductsByType(ctx, "kredit")
	assert.ErrorIs(t, err, e.ErrInvalidProductType)

	byCategory, err := f.uc.ProductsByCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)
}

func TestAdminProductsAndDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tabungan", 0)
	for i := 0; i < 12; i++ {
		f.product(t, c.ID, fmt.Sprintf("Produk %02d", i), func(in *form.ProductForm) {
			in.OrderIndex = i
			in.IsPublished = i%3 != 0
		})
	}

	state := listing.NewState(listing.DefaultPageSize)
	state.SetStatus(listing.StatusDraft)
	page, err := f.uc.AdminProducts(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 1, page.TotalPages)

	state = listing.NewState(listing.DefaultPageSize)
	state.SetPage(2)
	page, err = f.uc.AdminProducts(ctx, state)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "Produk 10", page.Items[0].Title)

	stats, err := f.uc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCategories)
	assert.Equal(t, 12, stats.TotalProducts)
	assert.Equal(t, 8, stats.Published)
	assert.Equal(t, 4, stats.Drafts)
	assert.Len(t, stats.Recent, 5)
}

// gatedCache хранит продукты в памяти; SetProduct ждет открытия gate.
type gatedCache struct {
	mu       sync.Mutex
	products map[string]*domain.Product
	gate     chan struct{}
	setting  chan struct{}
	deleted  chan struct{}
}

func newGatedCache() *gatedCache {
	return &gatedCache{
		products: make(map[string]*domain.Product),
		gate:     make(chan struct{}),
		setting:  make(chan struct{}, 8),
		deleted:  make(chan struct{}, 8),
	}
}

func (g *gatedCache) GetProduct(_ context.Context, slug string) (*domain.Product, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.products[slug], nil
}

func (g *gatedCache) SetProduct(_ context.Context, p *domain.Product) error {
	g.setting <- struct{}{}
	<-g.gate
	g.mu.Lock()
	defer g.mu.Unlock()
	g.products[p.Slug] = p
	return nil
}

func (g *gatedCache) DeleteProducts(_ context.Context, slugs ...string) error {
	g.mu.Lock()
	for _, s := range slugs {
		delete(g.products, s)
	}
	g.mu.Unlock()
	g.deleted <- struct{}{}
	return nil
}

func (g *gatedCache) GetCategories(context.Context) ([]*domain.Category, error) { return nil, nil }

func (g *gatedCache) SetCategories(context.Context, []*domain.Category) error { return nil }

func (g *gatedCache) DeleteCategories(context.Context) error { return nil }

func (g *gatedCache) cached(slug string) *domain.Product {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.products[slug]
}

func receive(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestGetPublishedProduct_DelayedCacheWriteAfterUnpublish(t *testing.T) {
	cache := newGatedCache()
	f := newFixtureWithCache(t, cache)
	ctx := context.Background()
	c := f.category(t, "Tabungan", 0)
	p := f.product(t, c.ID, "Tabungan Emas")
	receive(t, cache.deleted, "invalidation on create")

	got, err := f.uc.GetPublishedProduct(ctx, p.Slug)
	require.NoError(t, err)
	assert.True(t, got.IsPublished)
	receive(t, cache.setting, "background cache write")

	unpublished, err := f.uc.TogglePublish(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, unpublished.IsPublished)
	receive(t, cache.deleted, "invalidation on unpublish")

	// Запоздавшая запись устаревшего снимка должна быть удалена.
	close(cache.gate)
	receive(t, cache.deleted, "stale entry removal")
	assert.Nil(t, cache.cached(p.Slug))

	_, err = f.uc.GetPublishedProduct(ctx, p.Slug)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestGetProductBySlug_CachesInBackground(t *testing.T) {
	cache := newGatedCache()
	close(cache.gate)
	f := newFixtureWithCache(t, cache)
	ctx := context.Background()
	c := f.category(t, "Tabungan", 0)
	p := f.product(t, c.ID, "Tabungan Emas")
	receive(t, cache.deleted, "invalidation on create")

	_, err := f.uc.GetProductBySlug(ctx, p.Slug)
	require.NoError(t, err)
	receive(t, cache.setting, "background cache write")

	assert.Eventually(t, func() bool { return cache.cached(p.Slug) != nil }, time.Second, 5*time.Millisecond)
}

// txSpy отмечает, выполняется ли вызов внутри TxManager.Do.
type txSpy struct {
	usecase.TxManager
	depth atomic.Int32
}

func (s *txSpy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.TxManager.Do(ctx, func(ctx context.Context) error {
		s.depth.Add(1)
		defer s.depth.Add(-1)
		return fn(ctx)
	})
}

func (s *txSpy) inTx() bool { return s.depth.Load() > 0 }

type spyCategoryRepo struct {
	usecase.CategoryRepository
	tx      *txSpy
	checked []bool
}

func (r *spyCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	r.checked = append(r.checked, r.tx.inTx())
	return r.CategoryRepository.GetByID(ctx, id)
}

type spyProductRepo struct {
	usecase.ProductRepository
	tx        *txSpy
	created   []bool
	createErr error
}

func (r *spyProductRepo) Create(ctx context.Context, p *domain.Product) error {
	r.created = append(r.created, r.tx.inTx())
	if r.createErr != nil {
		return r.createErr
	}
	return r.ProductRepository.Create(ctx, p)
}

func TestAddProduct_CategoryCheckAndInsertShareTransaction(t *testing.T) {
	store, err := bolt.Open(&cfg.BoltCfg{Path: filepath.Join(t.TempDir(), "catalog.db"), Timeout: time.Second}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	tx := &txSpy{TxManager: bolt.NewTxManager()}
	categories := &spyCategoryRepo{CategoryRepository: bolt.NewCategoryRepo(store), tx: tx}
	products := &spyProductRepo{ProductRepository: bolt.NewProductRepo(store), tx: tx}
	uc := usecase.NewCatalogUC(categories, products, tx, &fakeImages{}, nil, nil, logger.NewNop())
	ctx := context.Background()

	cin := form.NewCategoryForm()
	cin.Name = "Tabungan"
	cin.ThumbnailURL = storageBase + "categories/tabungan.png"
	c, err := uc.AddCategory(ctx, cin)
	require.NoError(t, err)

	in := form.NewProductForm()
	in.CategoryID = c.ID
	in.Title = "Tabungan Emas"
	in.ThumbnailURL = storageBase + "products/emas.png"
	in.KenaliProduk = "<p>Emas</p>"
	in.IsPublished = true

	_, err = uc.AddProduct(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, categories.checked)
	assert.Equal(t, []bool{true}, products.created)

	t.Run("category removed before insert", func(t *testing.T) {
		products.createErr = e.Wrap("ProductRepo.Create", e.ErrCategoryNotFound)
		defer func() { products.createErr = nil }()

		in.Title = "Tabungan Perak"
		_, err := uc.AddProduct(ctx, in)
		assert.ErrorIs(t, err, e.ErrValidation)
		assert.Equal(t, "Kategori tidak ditemukan", publicMessage(t, err))

		found, err := uc.ProductsByCategory(ctx, c.ID)
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})
}
