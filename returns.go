package proforma

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Returns holds the return metrics of a cash flow series.
type Returns struct {
	// Distributions is the sum of every positive flow.
	Distributions decimal.Decimal
	// Profit is Distributions minus the magnitude of the period 0 flow.
	Profit decimal.Decimal
	// EquityMultiple is Distributions over the investor equity, rounded to
	// 2 decimals.
	EquityMultiple Multiple
	IRR            IRR
}

// Compute returns the equity multiple and IRR of flows for an investor that
// committed equity, using DefaultSolver.
//
// equity is expected to be |flows[0]| when both describe the same outlay, this
// is not checked. Compute fails only on invalid inputs: fewer than two flows or
// a non-positive equity. An IRR that cannot be solved is reported by
// Returns.IRR, not as an error.
func Compute(equity decimal.Decimal, flows CashFlows) (Returns, error) {
	return DefaultSolver.Compute(equity, flows)
}

// Compute is like the package function Compute, with s solving the IRR.
func (s Solver) Compute(equity decimal.Decimal, flows CashFlows) (Returns, error) {
	if err := s.Validate(); err != nil {
		return Returns{}, err
	}
	if err := validateInputs(equity, flows); err != nil {
		return Returns{}, err
	}

	distributions := flows.Distributions()
	return Returns{
		Distributions:  distributions,
		Profit:         distributions.Sub(flows.Initial().Abs()),
		EquityMultiple: newMultiple(distributions.Div(equity)),
		IRR:            s.IRR(flows),
	}, nil
}

func validateInputs(equity decimal.Decimal, flows CashFlows) error {
	if len(flows) < 2 {
		return fmt.Errorf("%w: at least 2 cash flows are required, got %d", ErrInvalidInput, len(flows))
	}
	if !equity.IsPositive() {
		return fmt.Errorf("%w: investor equity must be positive, got %s", ErrInvalidInput, equity)
	}
	return nil
}

// MarshalJSON encodes the returns with a stable field order. An unsolved IRR
// is encoded as a null "irr" and its reason in "irrError".
func (r Returns) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("distributions", r.Distributions)
	w.Append("profit", r.Profit)
	w.Append("equityMultiple", r.EquityMultiple)
	w.Append("irr", r.IRR)
	if err := r.IRR.Err(); err != nil {
		w.Append("irrError", err.Error())
	}
	return w.MarshalJSON()
}
