package catalog

import (
	"sort"
	"strings"

	"github.com/Aitik-official/walnut-leather-sub000/models"
)

// SizeCustom matches products carrying at least one size outside the fixed
// S/M/L/XL set.
const SizeCustom = "custom"

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortNewest    = "newest"
	SortFeatured  = "featured"
)

// Filter is the listing configuration. Zero values deactivate a predicate;
// MaxPrice <= 0 means no upper bound. Active predicates are AND-combined.
type Filter struct {
	Category     string
	MainCategory string
	SubCategory  string
	Size         string
	Color        string
	Material     string
	MinPrice     float64
	MaxPrice     float64
	Search       string
	InStock      bool
	Sort         string
	Limit        int
}

// Apply filters, sorts and truncates the product list. Ties keep input
// order (database-sourced products arrive ahead of static ones).
func Apply(products []Product, f Filter) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			out = append(out, p)
		}
	}

	applySort(out, f.Sort)

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

func matches(p Product, f Filter) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.MainCategory != "" && !strings.EqualFold(p.MainCategory, f.MainCategory) {
		return false
	}
	if f.SubCategory != "" && !strings.EqualFold(p.SubCategory, f.SubCategory) {
		return false
	}
	if f.Size != "" && !matchesSize(p, f.Size) {
		return false
	}
	if f.Color != "" && !strings.EqualFold(p.Color, f.Color) {
		return false
	}
	if f.Material != "" && !strings.EqualFold(p.Material, f.Material) {
		return false
	}
	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if f.InStock && p.Stock <= 0 {
		return false
	}
	return true
}

func matchesSize(p Product, size string) bool {
	if size == SizeCustom {
		for _, s := range p.AvailableSizes {
			if !isStandardSize(s) {
				return true
			}
		}
		return false
	}
	for _, s := range p.AvailableSizes {
		if strings.EqualFold(string(s), size) {
			return true
		}
	}
	return false
}

func isStandardSize(s models.ProductSize) bool {
	for _, std := range models.StandardSizes {
		if s == std {
			return true
		}
	}
	return false
}

func applySort(products []Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) > strings.ToLower(products[j].Name)
		})
	case SortNewest:
		// Database documents rank ahead of the static fixture; within a
		// source, input order already reflects recency.
		sort.SliceStable(products, func(i, j int) bool {
			return sourceRank(products[i]) < sourceRank(products[j])
		})
	case SortFeatured:
		sort.SliceStable(products, func(i, j int) bool {
			ri, rj := featuredRank(products[i]), featuredRank(products[j])
			return ri < rj
		})
	}
}

func sourceRank(p Product) int {
	if p.Source == SourceDatabase {
		return 0
	}
	return 1
}

// featuredRank orders featured products first, then database before static.
func featuredRank(p Product) int {
	rank := sourceRank(p)
	if !p.Featured {
		rank += 2
	}
	return rank
}
