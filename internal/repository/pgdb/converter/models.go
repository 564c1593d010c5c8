package converter

import "time"

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Slug         string    `db:"slug"`
	Description  string    `db:"description"`
	Icon         string    `db:"icon"`
	ThumbnailURL string    `db:"thumbnail_url"`
	OrderIndex   int       `db:"order_index"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
// Контент хранится плоско: по колонке на каждое rich-text поле.
type ProductModel struct {
	ID                string    `db:"id"`
	CategoryID        string    `db:"category_id"`
	Type              string    `db:"type"`
	Title             string    `db:"title"`
	Slug              string    `db:"slug"`
	ThumbnailURL      string    `db:"thumbnail_url"`
	ShortDescription  string    `db:"short_description"`
	KenaliProduk      string    `db:"kenali_produk"`
	NamaPenerbit      string    `db:"nama_penerbit"`
	FiturUtama        string    `db:"fitur_utama"`
	Manfaat           string    `db:"manfaat"`
	Risiko            string    `db:"risiko"`
	Persyaratan       string    `db:"persyaratan"`
	Biaya             string    `db:"biaya"`
	InformasiTambahan string    `db:"informasi_tambahan"`
	FeaturedImageURL  string    `db:"featured_image_url"`
	YoutubeVideoURL   string    `db:"youtube_video_url"`
	GalleryImages     []string  `db:"gallery_images"`
	IsPublished       bool      `db:"is_published"`
	OrderIndex        int       `db:"order_index"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// AdminModel представляет запись таблицы admins в PostgreSQL.
type AdminModel struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash []byte    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
