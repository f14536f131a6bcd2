package domain

import "strings"

// Product belongs to exactly one seller and contains campaigns. The owning
// seller is implied by the context the product was loaded in.
type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewProduct is the body of a create-product request.
type NewProduct struct {
	Name string `json:"name"`
}

// Validate requires a product name.
func (p NewProduct) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("name", "product name is required")
	}
	return nil
}
