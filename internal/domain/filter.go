package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// FilterProducts returns the products whose title contains search, ignoring
// case. Order is preserved. An empty search returns products as is.
func FilterProducts(products []Product, search string) []Product {
	if search == "" {
		return products
	}

	// A Caser is stateful, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(search)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(fold.String(p.Title), needle) {
			out = append(out, p)
		}
	}
	return out
}
