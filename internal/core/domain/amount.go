package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a currency value in emeralds. It is written to JSON as a bare
// number, which is the shape the marketplace API emits and expects.
type Amount struct {
	decimal.Decimal
}

// MinCampaignAmount is the smallest bid or fund a campaign may carry.
var MinCampaignAmount = MustAmount("0.01")

// NewAmount parses a decimal string such as "12.50".
func NewAmount(value string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", value, err)
	}
	return Amount{Decimal: d}, nil
}

// MustAmount is NewAmount for constants and tests. It panics on malformed input.
func MustAmount(value string) Amount {
	a, err := NewAmount(value)
	if err != nil {
		panic(err)
	}
	return a
}

// Fixed formats the amount with exactly two decimals, rounding half away
// from zero.
func (a Amount) Fixed() string {
	return a.StringFixed(2)
}

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

// Balance is a seller's emerald balance as reported by the API. The API does
// not always send a number; anything that is not a JSON number is kept as
// invalid and displayed as zero.
type Balance struct {
	Amount Amount
	Valid  bool
}

// NewBalance returns a valid balance holding a.
func NewBalance(a Amount) Balance {
	return Balance{Amount: a, Valid: true}
}

// Display renders the balance with two decimals, "0.00" when invalid.
func (b Balance) Display() string {
	if !b.Valid {
		return "0.00"
	}
	return b.Amount.Fixed()
}

// MarshalJSON writes null for an invalid balance.
func (b Balance) MarshalJSON() ([]byte, error) {
	if !b.Valid {
		return []byte("null"), nil
	}
	return b.Amount.MarshalJSON()
}

// UnmarshalJSON never fails: malformed or non-numeric values produce an
// invalid balance instead of aborting the decode of the whole seller.
func (b *Balance) UnmarshalJSON(data []byte) error {
	*b = Balance{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil
	}
	num, ok := raw.(json.Number)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(num.String())
	if err != nil {
		return nil
	}
	*b = NewBalance(Amount{Decimal: d})
	return nil
}
