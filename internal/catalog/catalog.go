// Package catalog holds the product list served by the storefront API.
//
// A Store is built once at startup and never mutated afterwards, so it can be
// shared by every request without locking.
package catalog

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"tvshop_back_end/internal/models"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

type Store struct {
	products []models.Product
}

// NewStore copies products in declaration order.
func NewStore(products ...models.Product) *Store {
	p := make([]models.Product, len(products))
	copy(p, products)
	return &Store{products: p}
}

// Default returns the storefront's built-in catalog.
func Default() *Store {
	return NewStore(
		models.Product{ID: 1, Name: `Samsung 55" Crystal 4K UHD Smart TV`, Price: 54999, Category: "4k smart"},
		models.Product{ID: 2, Name: `LG 65" 4K OLED evo Smart TV`, Price: 129999, Category: "4k smart oled"},
	)
}

// List returns every product. The slice is a copy and never nil.
func (s *Store) List() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ListByTag returns the products whose category carries tag.
func (s *Store) ListByTag(tag string) []models.Product {
	out := []models.Product{}
	for _, p := range s.products {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Len() int { return len(s.products) }

// Get returns the first product with the given id.
func (s *Store) Get(id int) (models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Lookup parses a raw path value and returns the matching product.
func (s *Store) Lookup(raw string) (models.Product, error) {
	id, err := ParseProductID(raw)
	if err != nil {
		return models.Product{}, err
	}
	return s.Get(id)
}

// ParseProductID accepts the numeric literals a browser's Number() accepts
// when they denote an integer: " 1 ", "1.0", "1e0", "0x1", "0o1" and "0b1"
// are all id 1. Hex floats, underscores, Infinity and NaN are rejected.
func ParseProductID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidProductID
	}

	var f float64
	if base, digits, ok := radixLiteral(raw); ok {
		n, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return 0, ErrInvalidProductID
		}
		f = float64(n)
	} else {
		if strings.Trim(raw, "0123456789+-.eE") != "" {
			return 0, ErrInvalidProductID
		}
		var err error
		f, err = strconv.ParseFloat(raw, 64)
		if err != nil || f != math.Trunc(f) {
			return 0, ErrInvalidProductID
		}
	}

	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, ErrInvalidProductID
	}
	return int(f), nil
}

// radixLiteral splits an unsigned 0x, 0o or 0b literal.
func radixLiteral(s string) (base int, digits string, ok bool) {
	if len(s) < 2 || s[0] != '0' {
		return 0, "", false
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:], true
	case 'o', 'O':
		return 8, s[2:], true
	case 'b', 'B':
		return 2, s[2:], true
	}
	return 0, "", false
}
