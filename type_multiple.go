package proforma

import "github.com/shopspring/decimal"

// Multiple is a ratio rounded to 2 decimals, printed like "1.62x".
type Multiple struct {
	value decimal.Decimal
}

// newMultiple rounds half to even, so 1.625 becomes 1.62.
func newMultiple(v decimal.Decimal) Multiple {
	return Multiple{value: v.RoundBank(2)}
}

func (m Multiple) Decimal() decimal.Decimal { return m.value }
func (m Multiple) String() string           { return m.value.StringFixed(2) + "x" }

// MarshalJSON encodes the multiple as a bare JSON number.
func (m Multiple) MarshalJSON() ([]byte, error) {
	return []byte(m.value.StringFixed(2)), nil
}
