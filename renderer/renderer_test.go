package renderer

import (
	"testing"

	"github.com/etnz/proforma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func computeReport(t *testing.T, s proforma.Scenario) *Report {
	t.Helper()
	r, err := s.Compute(proforma.DefaultSolver)
	require.NoError(t, err)
	return NewReport(s, r)
}

// tables parses markdown and returns the text of every table cell, by table.
func tables(t *testing.T, md string) [][]string {
	t.Helper()
	src := []byte(md)
	doc := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var res [][]string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.Table:
			res = append(res, nil)
		case *east.TableCell:
			res[len(res)-1] = append(res[len(res)-1], string(n.Text(src)))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return res
}

func TestRenderReport(t *testing.T) {
	md := RenderReport(computeReport(t, proforma.DevelopmentExample()))

	assert.Contains(t, md, "# Real Estate Investment Pro Forma: Development project, $2M sale")
	assert.Contains(t, md, "## Cash Flows")

	got := tables(t, md)
	require.Len(t, got, 2)
	assert.Equal(t, []string{
		"Metric", "Value",
		"Initial Investor Equity", "$400,000",
		"Total Project Duration", "2 years",
		"Equity Multiple (EM)", "1.62x",
		"Internal Rate of Return (IRR)", "27.48%",
		"Total Profit", "$250,000",
	}, got[0])
	assert.Equal(t, []string{
		"Year", "Cash Flow",
		"0", "-$400,000",
		"1", "$0",
		"2", "$650,000",
	}, got[1])
}

func TestRenderReport_UnsolvedIRR(t *testing.T) {
	s := proforma.Scenario{
		Name:     "Stalled",
		Currency: "USD",
		Equity:   proforma.D(100),
		Duration: 1,
		Flows:    proforma.Flows(-100, 0),
	}
	got := tables(t, RenderReport(computeReport(t, s)))

	require.Len(t, got, 2)
	assert.Equal(t, []string{
		"Metric", "Value",
		"Initial Investor Equity", "$100",
		"Total Project Duration", "1 year",
		"Equity Multiple (EM)", "0.00x",
		"Internal Rate of Return (IRR)", "N/A (IRR calculation failed)",
		"Total Profit", "-$100",
	}, got[0])
}

func TestNewReport_ProfitFromLastFlow(t *testing.T) {
	s := proforma.Scenario{
		Name:     "Yield",
		Currency: "USD",
		Equity:   proforma.D(1000),
		Duration: 3,
		Flows:    proforma.Flows(-1000, 100, 100, 1100),
	}
	rep := computeReport(t, s)

	// the report profit ignores the intermediate distributions.
	assert.Equal(t, "$100", rep.Profit.Whole())
	assert.Len(t, rep.Flows, 4)
	assert.Equal(t, 3, rep.Flows[3].Period)
}

func TestRenderBatch(t *testing.T) {
	second := proforma.Scenario{
		Name:     "Hold",
		Currency: "USD",
		Equity:   proforma.D(100),
		Duration: 1,
		Flows:    proforma.Flows(-100, 150),
	}
	md := RenderBatch([]*Report{
		computeReport(t, proforma.DevelopmentExample()),
		computeReport(t, second),
	})

	got := tables(t, md)
	require.Len(t, got, 1)
	assert.Equal(t, []string{
		"Scenario", "Equity", "Duration", "EM", "IRR", "Total Profit",
		"Development project, $2M sale", "$400,000", "2 years", "1.62x", "27.48%", "$250,000",
		"Hold", "$100", "1 year", "1.50x", "50.00%", "$50",
	}, got[0])
}
