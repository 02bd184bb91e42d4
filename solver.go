package proforma

import (
	"fmt"
	"math"
)

// Solver finds the rate that zeroes the NPV of a cash flow series.
//
// It runs Newton-Raphson from Guess, and falls back to a bisection over the
// sign change of the NPV closest to a zero rate when Newton does not
// converge. A Solver is a plain value, safe for concurrent use.
type Solver struct {
	Guess         float64 // initial rate for Newton-Raphson
	MaxIterations int     // per method
	Tolerance     float64 // on |NPV|, relative to the largest absolute flow
}

// DefaultSolver is the solver used by Compute.
var DefaultSolver = Solver{
	Guess:         0.1,
	MaxIterations: 100,
	Tolerance:     1e-6,
}

const (
	// minStep stops Newton when the rate no longer moves.
	minStep = 1e-12
	// minGrowth and maxRate bound the bisection scan: rates are looked for
	// in [minGrowth-1, maxRate], that is above -99.9999999% and up to 1000%
	// per period.
	minGrowth = 1e-9
	maxRate   = 10.0
	// scanSteps is the number of brackets scanned, evenly spaced on the
	// logarithm of 1+rate.
	scanSteps = 4000
	// polishSteps bounds the Newton steps refining a rate that is already
	// within tolerance.
	polishSteps = 8
)

// Validate checks the solver configuration.
func (s Solver) Validate() error {
	if s.MaxIterations <= 0 {
		return fmt.Errorf("%w: solver iterations must be positive, got %d", ErrInvalidInput, s.MaxIterations)
	}
	if !(s.Tolerance > 0) {
		return fmt.Errorf("%w: solver tolerance must be positive, got %v", ErrInvalidInput, s.Tolerance)
	}
	if !(s.Guess > -1) || math.IsInf(s.Guess, 0) {
		return fmt.Errorf("%w: solver guess must be a finite rate above -100%%, got %v", ErrInvalidInput, s.Guess)
	}
	return nil
}

// IRR solves the internal rate of return of flows.
//
// It never fails: when no rate can be found the returned IRR is unsolved and
// carries the reason.
func (s Solver) IRR(flows CashFlows) IRR {
	if !flows.ChangesSign() {
		return unsolvedIRR(ErrNoSignChange)
	}
	tol := s.Tolerance * flows.scale()

	if r, ok := s.newton(flows, tol); ok {
		return solvedIRR(r)
	}
	if r, ok := s.bisect(flows, tol); ok {
		return solvedIRR(r)
	}
	return unsolvedIRR(ErrNoConvergence)
}

func (s Solver) newton(flows CashFlows, tol float64) (float64, bool) {
	r := s.Guess
	for i := 0; i < s.MaxIterations; i++ {
		v, dv := flows.npv(r)
		if math.Abs(v) <= tol {
			return polish(flows, r), true
		}
		if dv == 0 || math.IsNaN(dv) || math.IsInf(dv, 0) {
			return 0, false
		}
		step := v / dv
		r -= step
		if math.IsNaN(r) || math.IsInf(r, 0) || r <= -1 {
			return 0, false
		}
		if math.Abs(step) < minStep {
			v, _ = flows.npv(r)
			return r, math.Abs(v) <= tol
		}
	}
	return 0, false
}

// bisect scans (-1, maxRate] for brackets where the NPV changes sign, and
// refines the bracket closest to a zero rate.
func (s Solver) bisect(flows CashFlows, tol float64) (float64, bool) {
	lo, hi, found := bracket(flows)
	if !found {
		return 0, false
	}

	vlo := flows.NPV(lo)
	// each step halves the bracket, 200 of them exhaust float64 precision.
	for i, n := 0, max(s.MaxIterations, 200); i < n; i++ {
		mid := (lo + hi) / 2
		if (hi-lo)/2 < minStep*max(1, math.Abs(mid)) {
			break
		}
		v := flows.NPV(mid)
		if v == 0 {
			lo, hi = mid, mid
			break
		}
		if (v < 0) == (vlo < 0) {
			lo, vlo = mid, v
		} else {
			hi = mid
		}
	}
	r := polish(flows, (lo+hi)/2)
	return r, math.Abs(flows.NPV(r)) <= tol
}

// bracket returns the sign change of the NPV closest to a zero rate.
// Rates are sampled on a logarithmic scale of 1+rate, which keeps the
// sampling fine close to -100%.
func bracket(flows CashFlows) (lo, hi float64, found bool) {
	from, to := math.Log(minGrowth), math.Log(1+maxRate)
	width := (to - from) / scanSteps

	prev := minGrowth - 1
	prevV := flows.NPV(prev)
	for i := 1; i <= scanSteps; i++ {
		r := math.Exp(from+float64(i)*width) - 1
		v := flows.NPV(r)
		if !math.IsNaN(v) && !math.IsNaN(prevV) && (v == 0 || prevV*v < 0) {
			if !found || math.Abs(r) < math.Min(math.Abs(lo), math.Abs(hi)) {
				lo, hi, found = prev, r, true
			}
		}
		prev, prevV = r, v
	}
	return lo, hi, found
}

// polish runs a few Newton steps from r, a rate already within tolerance,
// and keeps them as long as they reduce the NPV.
func polish(flows CashFlows, r float64) float64 {
	for i := 0; i < polishSteps; i++ {
		v, dv := flows.npv(r)
		if v == 0 || dv == 0 || math.IsNaN(dv) || math.IsInf(dv, 0) {
			return r
		}
		next := r - v/dv
		if math.IsNaN(next) || next <= -1 || math.Abs(flows.NPV(next)) > math.Abs(v) {
			return r
		}
		if math.Abs(next-r) < minStep*max(1, math.Abs(r)) {
			return next
		}
		r = next
	}
	return r
}
