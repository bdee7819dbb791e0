// Package catalog provides the built-in, read-only product reference data.
package catalog

import (
	"strings"

	"github.com/mchmarny/leadcalc/pkg/model"
)

const (
	// CustomProductID identifies the template used for user-entered values.
	CustomProductID = "custom"
)

var (
	allProducts = concat(foodProducts, babyFoodProducts, cosmeticProducts)

	byID = index(allProducts)
)

func concat(lists ...[]model.Product) []model.Product {
	var n int
	for _, l := range lists {
		n += len(l)
	}
	all := make([]model.Product, 0, n)
	for _, l := range lists {
		all = append(all, l...)
	}
	return all
}

func index(list []model.Product) map[string]model.Product {
	m := make(map[string]model.Product, len(list)+1)
	for _, p := range list {
		m[p.ID] = p
	}
	m[customProduct.ID] = customProduct
	return m
}

// All returns the catalog products. The custom template is not included.
func All() []model.Product {
	list := make([]model.Product, len(allProducts))
	copy(list, allProducts)
	return list
}

// Custom returns the template for user-entered products.
func Custom() model.Product {
	return customProduct
}

// Find returns the product with id, including the custom template.
func Find(id string) (*model.Product, bool) {
	p, ok := byID[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

// Exists reports whether id is a built-in product id.
func Exists(id string) bool {
	_, ok := byID[id]
	return ok
}

// ByCategory returns the catalog products in category.
func ByCategory(category model.ProductCategory) []model.Product {
	list := make([]model.Product, 0)
	for _, p := range allProducts {
		if p.Category == category {
			list = append(list, p)
		}
	}
	return list
}

// Search returns products whose id, name or description contains query,
// ignoring case.
func Search(query string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	list := make([]model.Product, 0)
	for _, p := range allProducts {
		if Matches(&p, q) {
			list = append(list, p)
		}
	}
	return list
}

// Matches reports whether the lower-cased query q appears in the product's
// id, name or description.
func Matches(p *model.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.ID), q) ||
		strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
