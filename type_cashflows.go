package proforma

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CashFlows is an ordered series of periodic net cash amounts.
//
// Index 0 is the initial investment, conventionally negative or zero, and
// later entries are the periodic net flows, the last one usually carrying
// the exit proceeds.
type CashFlows []decimal.Decimal

// Flows creates a CashFlows from plain Go numbers.
func Flows[T number](values ...T) CashFlows {
	c := make(CashFlows, len(values))
	for i, v := range values {
		c[i] = D(v)
	}
	return c
}

// Initial returns the period 0 flow.
func (c CashFlows) Initial() decimal.Decimal {
	if len(c) == 0 {
		return decimal.Zero
	}
	return c[0]
}

// Last returns the flow of the last period.
func (c CashFlows) Last() decimal.Decimal {
	if len(c) == 0 {
		return decimal.Zero
	}
	return c[len(c)-1]
}

// Distributions returns the sum of every strictly positive flow, whatever
// its period.
func (c CashFlows) Distributions() decimal.Decimal {
	total := decimal.Zero
	for _, v := range c {
		if v.IsPositive() {
			total = total.Add(v)
		}
	}
	return total
}

// ChangesSign reports whether the non-zero flows contain both signs.
func (c CashFlows) ChangesSign() bool {
	var pos, neg bool
	for _, v := range c {
		switch v.Sign() {
		case 1:
			pos = true
		case -1:
			neg = true
		}
	}
	return pos && neg
}

// NPV returns the net present value of the series discounted at rate,
// Σ c[i] / (1+rate)^i.
func (c CashFlows) NPV(rate float64) float64 {
	npv, _ := c.npv(rate)
	return npv
}

// npv returns the net present value and its derivative with respect to rate.
func (c CashFlows) npv(rate float64) (value, slope float64) {
	base := 1 + rate
	for i, v := range c {
		f := v.InexactFloat64()
		d := math.Pow(base, float64(i))
		value += f / d
		slope -= float64(i) * f / (d * base)
	}
	return value, slope
}

// scale returns the largest absolute flow, used to make tolerances relative.
func (c CashFlows) scale() float64 {
	m := 0.0
	for _, v := range c {
		m = math.Max(m, math.Abs(v.InexactFloat64()))
	}
	return m
}

func (c CashFlows) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// UnmarshalJSON accepts an array of JSON numbers or numeric strings.
func (c *CashFlows) UnmarshalJSON(data []byte) error {
	var values []decimal.Decimal
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("%w: cash flows must be an array of numbers: %w", ErrInvalidInput, err)
	}
	*c = values
	return nil
}
