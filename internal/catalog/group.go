package catalog

import (
	"sort"

	"github.com/joao-fontenele/salmo-storefront/internal/domain"
)

// fallbackBrand groups products whose brand is blank.
const fallbackBrand = "Other"

type BrandGroup struct {
	Brand    string           `json:"brand"`
	Products []domain.Product `json:"products"`
}

// GroupByBrand buckets products under their brand, sorted by brand name for
// stable output. Product order within a group is preserved.
func GroupByBrand(products []domain.Product) []BrandGroup {
	buckets := make(map[string][]domain.Product)
	for _, p := range products {
		brand := p.Brand
		if brand == "" {
			brand = fallbackBrand
		}
		buckets[brand] = append(buckets[brand], p)
	}

	groups := make([]BrandGroup, 0, len(buckets))
	for brand, items := range buckets {
		groups = append(groups, BrandGroup{Brand: brand, Products: items})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Brand < groups[j].Brand })

	return groups
}
