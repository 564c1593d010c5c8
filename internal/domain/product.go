package domain

import (
	"regexp"
	"time"
)

// DefaultIssuerName подставляется в новые продукты типа "produk".
const DefaultIssuerName = "PT Bank Pembangunan Daerah Sumatera Selatan dan Bangka Belitung"

// Product описывает продукт или услугу каталога
type Product struct {
	ID               string
	CategoryID       string
	Title            string
	Slug             string // всегда выводится из Title
	ThumbnailURL     string
	ShortDescription string
	FeaturedImageURL string
	VideoURL         string
	GalleryImages    []string
	Content          ProductContent
	IsPublished      bool
	OrderIndex       int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Type возвращает тип продукта, определяемый вариантом контента.
func (p *Product) Type() ProductType {
	if p.Content == nil {
		return ProductTypeGoods
	}
	return p.Content.Type()
}

// Clone возвращает глубокую копию продукта.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	if p.GalleryImages != nil {
		cp.GalleryImages = append([]string(nil), p.GalleryImages...)
	}
	return &cp
}

// MediaURLs возвращает ссылки на изображения вне rich-text полей:
// обложку, главное изображение и галерею.
func (p *Product) MediaURLs() []string {
	urls := make([]string, 0, 2+len(p.GalleryImages))
	if p.ThumbnailURL != "" {
		urls = append(urls, p.ThumbnailURL)
	}
	if p.FeaturedImageURL != "" {
		urls = append(urls, p.FeaturedImageURL)
	}
	for _, u := range p.GalleryImages {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&\n?#]+)`),
}

// YouTubeID извлекает идентификатор ролика из ссылки на видео.
// Пустая строка, если ссылка не распознана.
func (p *Product) YouTubeID() string {
	return ExtractYouTubeID(p.VideoURL)
}

func ExtractYouTubeID(url string) string {
	if url == "" {
		return ""
	}
	for _, re := range youtubePatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}
