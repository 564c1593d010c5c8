package usecase

import (
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/form"
	"github.com/DRSN-tech/catalog-backend/internal/richtext"
)

// CATALOG USECASE

const (
	relatedProductsLimit = 4
	recentProductsLimit  = 5
)

// ProductQuery — параметры выборки продуктов из репозитория.
// Пустые поля не ограничивают выборку.
type ProductQuery struct {
	CategoryID    string
	Type          domain.ProductType
	Search        string // подстрока title или short_description без учета регистра
	PublishedOnly bool
	ExcludeID     string
	Limit         int
}

// CategoryPatch — частичное изменение категории. nil означает "не менять".
type CategoryPatch struct {
	Name         *string      `json:"name"`
	Description  *string      `json:"description"`
	Icon         *domain.Icon `json:"icon"`
	ThumbnailURL *string      `json:"thumbnailUrl"`
	OrderIndex   *int         `json:"orderIndex"`
}

func (p CategoryPatch) apply(f *form.CategoryForm) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Icon != nil {
		f.Icon = *p.Icon
	}
	if p.ThumbnailURL != nil {
		f.ThumbnailURL = *p.ThumbnailURL
	}
	if p.OrderIndex != nil {
		f.OrderIndex = *p.OrderIndex
	}
}

func (p CategoryPatch) empty() bool {
	return p == CategoryPatch{}
}

// ProductPatch — частичное изменение продукта. nil означает "не менять".
type ProductPatch struct {
	CategoryID        *string             `json:"categoryId"`
	Type              *domain.ProductType `json:"type"`
	Title             *string             `json:"title"`
	ThumbnailURL      *string             `json:"thumbnailUrl"`
	ShortDescription  *string             `json:"shortDescription"`
	KenaliProduk      *string             `json:"kenaliProduk"`
	NamaPenerbit      *string             `json:"namaPenerbit"`
	FiturUtama        *string             `json:"fiturUtama"`
	Manfaat           *string             `json:"manfaat"`
	Risiko            *string             `json:"risiko"`
	Persyaratan       *string             `json:"persyaratan"`
	Biaya             *string             `json:"biaya"`
	InformasiTambahan *string             `json:"informasiTambahan"`
	FeaturedImageURL  *string             `json:"featuredImageUrl"`
	YoutubeVideoURL   *string             `json:"youtubeVideoUrl"`
	GalleryImages     *[]string           `json:"galleryImages"`
	IsPublished       *bool               `json:"isPublished"`
	OrderIndex        *int                `json:"orderIndex"`
}

func (p ProductPatch) apply(f *form.ProductForm) {
	set(&f.CategoryID, p.CategoryID)
	set(&f.Type, p.Type)
	set(&f.Title, p.Title)
	set(&f.ThumbnailURL, p.ThumbnailURL)
	set(&f.ShortDescription, p.ShortDescription)
	set(&f.KenaliProduk, p.KenaliProduk)
	set(&f.NamaPenerbit, p.NamaPenerbit)
	set(&f.FiturUtama, p.FiturUtama)
	set(&f.Manfaat, p.Manfaat)
	set(&f.Risiko, p.Risiko)
	set(&f.Persyaratan, p.Persyaratan)
	set(&f.Biaya, p.Biaya)
	set(&f.InformasiTambahan, p.InformasiTambahan)
	set(&f.FeaturedImageURL, p.FeaturedImageURL)
	set(&f.YoutubeVideoURL, p.YoutubeVideoURL)
	set(&f.IsPublished, p.IsPublished)
	set(&f.OrderIndex, p.OrderIndex)
	if p.GalleryImages != nil {
		f.GalleryImages = append([]string(nil), (*p.GalleryImages)...)
	}
}

func (p ProductPatch) empty() bool {
	return p == ProductPatch{}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// InsertImagesReq — запрос на вставку изображений с подписями в rich-text поле продукта.
type InsertImagesReq struct {
	ProductID string
	Field     domain.ContentField
	Images    []richtext.StagedImage
	// Position — индекс узла верхнего уровня, перед которым вставляются
	// изображения. Отрицательное значение означает конец документа.
	Position int
}

// DashboardStats — сводка для главной страницы админки.
type DashboardStats struct {
	TotalCategories int
	TotalProducts   int
	Published       int
	Drafts          int
	Recent          []*domain.Product
}

// AUTH USECASE

// Token — выпущенный токен доступа.
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// Claims — проверенные данные токена доступа.
type Claims struct {
	TokenID   string
	AdminID   string
	Email     string
	ExpiresAt time.Time
}
