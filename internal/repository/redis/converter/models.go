package converter

import "time"

// CategoryRedisModel — категория в том виде, в котором она лежит в кэше.
type CategoryRedisModel struct {
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

// ProductRedisModel — продукт с плоским контентом для кэша.
type ProductRedisModel struct {
	ID                string    `json:"id"`
	CategoryID        string    `json:"category_id"`
	Type              string    `json:"type"`
	Title             string    `json:"title"`
	Slug              string    `json:"slug"`
	ThumbnailURL      string    `json:"thumbnail_url"`
	ShortDescription  string    `json:"short_description"`
	KenaliProduk      string    `json:"kenali_produk"`
	NamaPenerbit      string    `json:"nama_penerbit,omitempty"`
	FiturUtama        string    `json:"fitur_utama"`
	Manfaat           string    `json:"manfaat,omitempty"`
	Risiko            string    `json:"risiko,omitempty"`
	Persyaratan       string    `json:"persyaratan"`
	Biaya             string    `json:"biaya,omitempty"`
	InformasiTambahan string    `json:"informasi_tambahan,omitempty"`
	FeaturedImageURL  string    `json:"featured_image_url,omitempty"`
	YoutubeVideoURL   string    `json:"youtube_video_url,omitempty"`
	GalleryImages     []string  `json:"gallery_images,omitempty"`
	IsPublished       bool      `json:"is_published"`
	OrderIndex        int       `json:"order_index"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
