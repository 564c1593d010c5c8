package domain

import (
	"fmt"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
)

// ContentField — имя rich-text поля продукта. Совпадает с колонкой хранилища.
type ContentField string

const (
	FieldOverview       ContentField = "kenali_produk"
	FieldKeyFeatures    ContentField = "fitur_utama"
	FieldBenefits       ContentField = "manfaat"
	FieldRisks          ContentField = "risiko"
	FieldRequirements   ContentField = "persyaratan"
	FieldCosts          ContentField = "biaya"
	FieldAdditionalInfo ContentField = "informasi_tambahan"
)

// ProductContent — содержимое продукта, зависящее от его типа.
// Реализуется только GoodsContent и ServiceContent.
type ProductContent interface {
	Type() ProductType
	// Primary возвращает обязательное rich-text поле варианта.
	Primary() string
	// Fields возвращает все rich-text поля варианта в порядке отображения.
	Fields() []ContentField
	Field(f ContentField) (string, bool)
	// WithField возвращает копию контента с замененным полем.
	WithField(f ContentField, html string) (ProductContent, error)

	isProductContent()
}

// GoodsContent — контент продукта типа "produk"
type GoodsContent struct {
	Overview       string
	IssuerName     string // обычный текст, не rich-text
	KeyFeatures    string
	Benefits       string
	Risks          string
	Requirements   string
	Costs          string
	AdditionalInfo string
}

// ServiceContent — контент услуги типа "layanan"
type ServiceContent struct {
	Description string
	KeyFeatures string
	Steps       string
}

func (GoodsContent) Type() ProductType { return ProductTypeGoods }
func (GoodsContent) isProductContent() {}

func (c GoodsContent) Primary() string { return c.Overview }

func (GoodsContent) Fields() []ContentField {
	return []ContentField{
		FieldOverview, FieldKeyFeatures, FieldBenefits, FieldRisks,
		FieldRequirements, FieldCosts, FieldAdditionalInfo,
	}
}

func (c GoodsContent) Field(f ContentField) (string, bool) {
	switch f {
	case FieldOverview:
		return c.Overview, true
	case FieldKeyFeatures:
		return c.KeyFeatures, true
	case FieldBenefits:
		return c.Benefits, true
	case FieldRisks:
		return c.Risks, true
	case FieldRequirements:
		return c.Requirements, true
	case FieldCosts:
		return c.Costs, true
	case FieldAdditionalInfo:
		return c.AdditionalInfo, true
	}
	return "", false
}

func (c GoodsContent) WithField(f ContentField, html string) (ProductContent, error) {
	switch f {
	case FieldOverview:
		c.Overview = html
	case FieldKeyFeatures:
		c.KeyFeatures = html
	case FieldBenefits:
		c.Benefits = html
	case FieldRisks:
		c.Risks = html
	case FieldRequirements:
		c.Requirements = html
	case FieldCosts:
		c.Costs = html
	case FieldAdditionalInfo:
		c.AdditionalInfo = html
	default:
		return nil, e.Wrap(fmt.Sprintf("field %q", f), e.ErrInvalidContentKey)
	}
	return c, nil
}

func (ServiceContent) Type() ProductType { return ProductTypeService }
func (ServiceContent) isProductContent() {}

func (c ServiceContent) Primary() string { return c.Description }

func (ServiceContent) Fields() []ContentField {
	return []ContentField{FieldOverview, FieldKeyFeatures, FieldRequirements}
}

func (c ServiceContent) Field(f ContentField) (string, bool) {
	switch f {
	case FieldOverview:
		return c.Description, true
	case FieldKeyFeatures:
		return c.KeyFeatures, true
	case FieldRequirements:
		return c.Steps, true
	}
	return "", false
}

func (c ServiceContent) WithField(f ContentField, html string) (ProductContent, error) {
	switch f {
	case FieldOverview:
		c.Description = html
	case FieldKeyFeatures:
		c.KeyFeatures = html
	case FieldRequirements:
		c.Steps = html
	default:
		return nil, e.Wrap(fmt.Sprintf("field %q for %s", f, ProductTypeService), e.ErrInvalidContentKey)
	}
	return c, nil
}

// RichTextValues возвращает значения всех rich-text полей контента.
func RichTextValues(c ProductContent) []string {
	if c == nil {
		return nil
	}
	fields := c.Fields()
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		v, _ := c.Field(f)
		out = append(out, v)
	}
	return out
}

// FlatContent — плоское представление контента для слоя хранения.
type FlatContent struct {
	KenaliProduk      string
	NamaPenerbit      string
	FiturUtama        string
	Manfaat           string
	Risiko            string
	Persyaratan       string
	Biaya             string
	InformasiTambahan string
}

// Flatten раскладывает вариант контента по колонкам хранилища.
func Flatten(c ProductContent) FlatContent {
	switch v := c.(type) {
	case GoodsContent:
		return FlatContent{
			KenaliProduk:      v.Overview,
			NamaPenerbit:      v.IssuerName,
			FiturUtama:        v.KeyFeatures,
			Manfaat:           v.Benefits,
			Risiko:            v.Risks,
			Persyaratan:       v.Requirements,
			Biaya:             v.Costs,
			InformasiTambahan: v.AdditionalInfo,
		}
	case ServiceContent:
		return FlatContent{
			KenaliProduk: v.Description,
			FiturUtama:   v.KeyFeatures,
			Persyaratan:  v.Steps,
		}
	}
	return FlatContent{}
}

// BuildContent собирает вариант контента по типу продукта из плоских колонок.
func BuildContent(t ProductType, f FlatContent) (ProductContent, error) {
	switch t {
	case ProductTypeGoods:
		return GoodsContent{
			Overview:       f.KenaliProduk,
			IssuerName:     f.NamaPenerbit,
			KeyFeatures:    f.FiturUtama,
			Benefits:       f.Manfaat,
			Risks:          f.Risiko,
			Requirements:   f.Persyaratan,
			Costs:          f.Biaya,
			AdditionalInfo: f.InformasiTambahan,
		}, nil
	case ProductTypeService:
		return ServiceContent{
			Description: f.KenaliProduk,
			KeyFeatures: f.FiturUtama,
			Steps:       f.Persyaratan,
		}, nil
	}
	return nil, e.Wrap(fmt.Sprintf("type %q", t), e.ErrInvalidProductType)
}
