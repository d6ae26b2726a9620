package enums

import "fmt"

// ProductCategory identifies the catalog section a product belongs to.
type ProductCategory string

const (
	ProductCategoryGrains      ProductCategory = "grains"
	ProductCategorySupplements ProductCategory = "supplements"
	ProductCategoryJuices      ProductCategory = "juices"
	ProductCategoryNuts        ProductCategory = "nuts"
	ProductCategoryOils        ProductCategory = "oils"
	ProductCategoryFlours      ProductCategory = "flours"
)

var validProductCategories = []ProductCategory{
	ProductCategoryGrains,
	ProductCategorySupplements,
	ProductCategoryJuices,
	ProductCategoryNuts,
	ProductCategoryOils,
	ProductCategoryFlours,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
