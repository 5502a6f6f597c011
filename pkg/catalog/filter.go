package catalog

import (
	"strings"

	"katalog/internal/models"
)

// Filter holds the active filter criteria. All criteria are conjunctive:
// a product must satisfy every one that is set. Nil bounds and empty strings
// impose no constraint.
type Filter struct {
	// Category must match exactly when non-empty.
	Category string
	// MinPrice and MaxPrice are inclusive bounds.
	MinPrice *float64
	MaxPrice *float64
	// MinRating is an inclusive lower bound.
	MinRating *float64
	// Search matches case-insensitively as a substring of the product name
	// or description.
	Search string
}

// IsZero reports whether no criterion is set.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinRating == nil && f.Search == ""
}

// Match reports whether the product satisfies every set criterion.
func (f Filter) Match(p models.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	return true
}

// Apply returns the products that match the filter, preserving order.
func (f Filter) Apply(products []models.Product) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
