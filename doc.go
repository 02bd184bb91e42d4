// Package proforma computes the return metrics of a real estate investment
// from the investor equity and the yearly cash flows of the project.
//
// Two metrics are computed:
//   - Equity Multiple: the cash distributed back to the investor over the
//     equity they contributed.
//   - Internal Rate of Return: the discount rate at which the net present
//     value of the cash flows is zero.
//
// The computation is pure: Compute has no side effects and is safe for
// concurrent use. An IRR that cannot be solved does not fail the computation,
// it is reported by the IRR value so that the equity multiple can still be
// presented.
//
// This package is the foundation of the `proforma` command line tool, which
// renders the results as a pro forma report.
package proforma
