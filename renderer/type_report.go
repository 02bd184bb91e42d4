package renderer

import "github.com/etnz/proforma"

// Report is the data of a pro forma report.
// Numbers are kept in the proforma types so that they carry their own
// formatting (Whole, String).
type Report struct {
	Name        string
	Description string
	// Equity is the investor equity.
	Equity proforma.Money
	// Duration of the project in years, as supplied by the scenario.
	Duration       int
	EquityMultiple proforma.Multiple
	IRR            proforma.IRR
	// Profit is the last cash flow minus the investor equity.
	//
	// It is not Returns.Profit: intermediate distributions are ignored.
	Profit proforma.Money
	Flows  []ReportFlow
}

// ReportFlow is the cash flow of one period.
type ReportFlow struct {
	Period int
	Amount proforma.Money
}

// NewReport creates the report of a computed scenario.
func NewReport(s proforma.Scenario, r proforma.Returns) *Report {
	equity := proforma.M(s.Equity.Abs(), s.Currency)
	rep := &Report{
		Name:           s.Name,
		Description:    s.Description,
		Equity:         equity,
		Duration:       s.Duration,
		EquityMultiple: r.EquityMultiple,
		IRR:            r.IRR,
		Profit:         proforma.M(s.Flows.Last(), s.Currency).Sub(equity),
		Flows:          make([]ReportFlow, len(s.Flows)),
	}
	for i, f := range s.Flows {
		rep.Flows[i] = ReportFlow{Period: i, Amount: proforma.M(f, s.Currency)}
	}
	return rep
}
