package proforma

import (
	"math"

	"github.com/shopspring/decimal"
)

// IRR is the outcome of an internal rate of return calculation: either a
// solved rate, or the reason why no rate could be determined.
//
// The zero value is an unsolved IRR.
type IRR struct {
	rate float64 // as a fraction, 0.1 is 10%
	ok   bool
	err  error
}

func solvedIRR(rate float64) IRR { return IRR{rate: rate, ok: true} }

func unsolvedIRR(reason error) IRR { return IRR{rate: math.NaN(), err: reason} }

// Solved reports whether a rate was found.
func (i IRR) Solved() bool { return i.ok }

// Rate returns the solved rate as a fraction, or NaN.
func (i IRR) Rate() float64 {
	if !i.Solved() {
		return math.NaN()
	}
	return i.rate
}

// Percent returns the rate as a percentage rounded to 2 decimals, half to even.
// ok is false when the IRR is unsolved.
func (i IRR) Percent() (p Percent, ok bool) {
	if !i.Solved() {
		return Percent(math.NaN()), false
	}
	return Percent(i.rounded().InexactFloat64()), true
}

func (i IRR) rounded() decimal.Decimal {
	return decimal.NewFromFloat(i.rate * 100).RoundBank(2)
}

// Err returns why the IRR is unsolved. It wraps ErrUnsolvable, and is nil for
// a solved IRR.
func (i IRR) Err() error {
	if i.ok {
		return nil
	}
	if i.err == nil {
		return ErrUnsolvable
	}
	return i.err
}

// String returns the percentage, e.g. "27.48%", or a placeholder for an
// unsolved IRR.
func (i IRR) String() string {
	if p, ok := i.Percent(); ok {
		return p.String()
	}
	return "N/A (" + ErrUnsolvable.Error() + ")"
}

// MarshalJSON encodes a solved IRR as its rounded percentage, and an unsolved
// one as null.
func (i IRR) MarshalJSON() ([]byte, error) {
	if !i.Solved() {
		return []byte("null"), nil
	}
	return []byte(i.rounded().StringFixedBank(2)), nil
}
