package domain

import "strings"

// Seller is an account holding an emerald balance and owning products.
type Seller struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	EmeraldBalance Balance `json:"emeraldBalance"`
}

// NewSeller is the body of a create-seller request.
type NewSeller struct {
	Name                  string `json:"name"`
	InitialEmeraldBalance Amount `json:"initialEmeraldBalance"`
}

// Validate checks the seller creation form: a name and a non-negative
// initial balance are required.
func (s NewSeller) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return invalid("name", "seller name is required")
	}
	if s.InitialEmeraldBalance.IsNegative() {
		return invalid("initialEmeraldBalance", "initial balance must not be negative")
	}
	return nil
}

// TopUp is the body of a seller top-up request.
type TopUp struct {
	Amount Amount `json:"amount"`
}

// Validate requires a strictly positive amount.
func (t TopUp) Validate() error {
	if !t.Amount.IsPositive() {
		return invalid("amount", "top-up amount must be positive")
	}
	return nil
}
