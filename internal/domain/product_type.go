package domain

import (
	"fmt"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
)

// ProductType различает банковские продукты и услуги
type ProductType string

const (
	ProductTypeGoods   ProductType = "produk"
	ProductTypeService ProductType = "layanan"
)

func ParseProductType(s string) (ProductType, error) {
	switch ProductType(s) {
	case ProductTypeGoods, ProductTypeService:
		return ProductType(s), nil
	default:
		return "", e.Wrap(fmt.Sprintf("type %q", s), e.ErrInvalidProductType)
	}
}

func (t ProductType) String() string {
	return string(t)
}
