package bolt

import (
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// snapshot — весь каталог в виде одного JSON-документа.
type snapshot struct {
	Categories []categoryRecord `json:"categories"`
	Products   []productRecord  `json:"products"`
}

func (s snapshot) clone() snapshot {
	out := snapshot{
		Categories: make([]categoryRecord, len(s.Categories)),
		Products:   make([]productRecord, len(s.Products)),
	}
	copy(out.Categories, s.Categories)
	copy(out.Products, s.Products)
	return out
}

type categoryRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	ThumbnailURL string    `json:"thumbnail_url"`
	OrderIndex   int       `json:"order_index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type productRecord struct {
	ID                string    `json:"id"`
	CategoryID        string    `json:"category_id"`
	Type              string    `json:"type"`
	Title             string    `json:"title"`
	Slug              string    `json:"slug"`
	ThumbnailURL      string    `json:"thumbnail_url"`
	ShortDescription  string    `json:"short_description"`
	KenaliProduk      string    `json:"kenali_produk"`
	NamaPenerbit      string    `json:"nama_penerbit"`
	FiturUtama        string    `json:"fitur_utama"`
	Manfaat           string    `json:"manfaat"`
	Risiko            string    `json:"risiko"`
	Persyaratan       string    `json:"persyaratan"`
	Biaya             string    `json:"biaya"`
	InformasiTambahan string    `json:"informasi_tambahan"`
	FeaturedImageURL  string    `json:"featured_image_url"`
	YoutubeVideoURL   string    `json:"youtube_video_url"`
	GalleryImages     []string  `json:"gallery_images"`
	IsPublished       bool      `json:"is_published"`
	OrderIndex        int       `json:"order_index"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type adminRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func toCategoryRecord(c *domain.Category) categoryRecord {
	return categoryRecord{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Icon:         c.Icon.String(),
		ThumbnailURL: c.ThumbnailURL,
		OrderIndex:   c.OrderIndex,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (r categoryRecord) toDomain() (*domain.Category, error) {
	icon, err := domain.ParseIcon(r.Icon)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	return &domain.Category{
		ID:           r.ID,
		Name:         r.Name,
		Slug:         r.Slug,
		Description:  r.Description,
		Icon:         icon,
		ThumbnailURL: r.ThumbnailURL,
		OrderIndex:   r.OrderIndex,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}

func toProductRecord(p *domain.Product) productRecord {
	flat := domain.Flatten(p.Content)
	return productRecord{
		ID:                p.ID,
		CategoryID:        p.CategoryID,
		Type:              p.Type().String(),
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
		GalleryImages:     append([]string(nil), p.GalleryImages...),
		IsPublished:       p.IsPublished,
		OrderIndex:        p.OrderIndex,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (r productRecord) toDomain() (*domain.Product, error) {
	t, err := domain.ParseProductType(r.Type)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	content, err := domain.BuildContent(t, domain.FlatContent{
		KenaliProduk:      r.KenaliProduk,
		NamaPenerbit:      r.NamaPenerbit,
		FiturUtama:        r.FiturUtama,
		Manfaat:           r.Manfaat,
		Risiko:            r.Risiko,
		Persyaratan:       r.Persyaratan,
		Biaya:             r.Biaya,
		InformasiTambahan: r.InformasiTambahan,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	return &domain.Product{
		ID:               r.ID,
		CategoryID:       r.CategoryID,
		Title:            r.Title,
		Slug:             r.Slug,
		ThumbnailURL:     r.ThumbnailURL,
		ShortDescription: r.ShortDescription,
		FeaturedImageURL: r.FeaturedImageURL,
		VideoURL:         r.YoutubeVideoURL,
		GalleryImages:    append([]string(nil), r.GalleryImages...),
		Content:          content,
		IsPublished:      r.IsPublished,
		OrderIndex:       r.OrderIndex,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}, nil
}
