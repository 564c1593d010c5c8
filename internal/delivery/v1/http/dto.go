package http

import (
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/listing"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
)

type CategoryResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Slug         string      `json:"slug"`
	Description  string      `json:"description"`
	Icon         domain.Icon `json:"icon"`
	ThumbnailURL string      `json:"thumbnailUrl"`
	OrderIndex   int         `json:"orderIndex"`
	ProductCount *int        `json:"productCount,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func toCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Icon:         c.Icon,
		ThumbnailURL: c.ThumbnailURL,
		OrderIndex:   c.OrderIndex,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toCategoryResponses(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

// ProductResponse — плоское представление продукта. Поля, которых нет
// у варианта контента, опускаются.
type ProductResponse struct {
	ID                string             `json:"id"`
	CategoryID        string             `json:"categoryId"`
	Type              domain.ProductType `json:"type"`
	Title             string             `json:"title"`
	Slug              string             `json:"slug"`
	ThumbnailURL      string             `json:"thumbnailUrl"`
	ShortDescription  string             `json:"shortDescription"`
	KenaliProduk      string             `json:"kenaliProduk"`
	NamaPenerbit      string             `json:"namaPenerbit,omitempty"`
	FiturUtama        string             `json:"fiturUtama,omitempty"`
	Manfaat           string             `json:"manfaat,omitempty"`
	Risiko            string             `json:"risiko,omitempty"`
	Persyaratan       string             `json:"persyaratan,omitempty"`
	Biaya             string             `json:"biaya,omitempty"`
	InformasiTambahan string             `json:"informasiTambahan,omitempty"`
	FeaturedImageURL  string             `json:"featuredImageUrl,omitempty"`
	YoutubeVideoURL   string             `json:"youtubeVideoUrl,omitempty"`
	GalleryImages     []string           `json:"galleryImages"`
	IsPublished       bool               `json:"isPublished"`
	OrderIndex        int                `json:"orderIndex"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	flat := domain.Flatten(p.Content)
	gallery := p.GalleryImages
	if gallery == nil {
		gallery = []string{}
	}

	return ProductResponse{
		ID:                p.ID,
		CategoryID:        p.CategoryID,
		Type:              p.Type(),
		Title:             p.Title,
		Slug:              p.Slug,
		ThumbnailURL:      p.ThumbnailURL,
		ShortDescription:  p.ShortDescription,
		KenaliProduk:      flat.KenaliProduk,
		NamaPenerbit:      flat.NamaPenerbit,
		FiturUtama:        flat.FiturUtama,
		Manfaat:           flat.Manfaat,
		Risiko:            flat.Risiko,
		Persyaratan:       flat.Persyaratan,
		Biaya:             flat.Biaya,
		InformasiTambahan: flat.InformasiTambahan,
		FeaturedImageURL:  p.FeaturedImageURL,
		YoutubeVideoURL:   p.VideoURL,
		GalleryImages:     gallery,
		IsPublished:       p.IsPublished,
		OrderIndex:        p.OrderIndex,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toProductResponses(products []*domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

type CategoryDetailResponse struct {
	Category CategoryResponse  `json:"category"`
	Products []ProductResponse `json:"products"`
}

type ProductDetailResponse struct {
	Product   ProductResponse   `json:"product"`
	YoutubeID string            `json:"youtubeId,omitempty"`
	Related   []ProductResponse `json:"related"`
}

type ProductPageResponse struct {
	Items      []ProductResponse `json:"items"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	Total      int               `json:"total"`
	TotalPages int               `json:"totalPages"`
	HasNext    bool              `json:"hasNext"`
	HasPrev    bool              `json:"hasPrev"`
}

func toProductPageResponse(p listing.Page[*domain.Product]) ProductPageResponse {
	return ProductPageResponse{
		Items:      toProductResponses(p.Items),
		Page:       p.Page,
		Size:       p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
	}
}

type DashboardResponse struct {
	TotalCategories int               `json:"totalCategories"`
	TotalProducts   int               `json:"totalProducts"`
	Published       int               `json:"published"`
	Drafts          int               `json:"drafts"`
	Recent          []ProductResponse `json:"recent"`
}

func toDashboardResponse(s *usecase.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalCategories: s.TotalCategories,
		TotalProducts:   s.TotalProducts,
		Published:       s.Published,
		Drafts:          s.Drafts,
		Recent:          toProductResponses(s.Recent),
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
