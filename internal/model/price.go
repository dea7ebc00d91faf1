package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a numeric(10,2) amount. It is encoded as a JSON number with two fractional digits.
type Price struct {
	decimal.Decimal
}

// NewPrice parses a decimal string such as "12.50".
func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{Decimal: d}, nil
}

// String returns the amount with exactly two fractional digits.
func (p Price) String() string {
	return p.StringFixed(2)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.StringFixed(2)), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	return p.Decimal.UnmarshalJSON(data)
}
