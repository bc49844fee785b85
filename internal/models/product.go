package models

import "strings"

type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
}

// Tags splits the space-separated category label.
func (p Product) Tags() []string {
	return strings.Fields(p.Category)
}

// HasTag reports whether tag is one of the category labels.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags() {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
