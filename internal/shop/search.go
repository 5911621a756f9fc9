package shop

import (
	"strings"
	"unicode/utf8"

	"storefront-service/internal/model"
)

// MinQueryLength is the shortest query the search overlay acts on
const MinQueryLength = 2

// Search returns products whose name or brand contains q, ignoring case.
// Queries shorter than MinQueryLength return nothing.
func Search(products []model.Product, q string) []model.Product {
	out := []model.Product{}
	if utf8.RuneCountInString(q) < MinQueryLength {
		return out
	}

	needle := strings.ToLower(q)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Brand), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Detail returns the product with id, or the first catalog entry when no
// product matches. ok is false only for an empty catalog.
func Detail(products []model.Product, id string) (p model.Product, ok bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	if len(products) == 0 {
		return model.Product{}, false
	}
	return products[0], true
}
