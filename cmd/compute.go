package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/proforma"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// computeCmd holds the flags for the 'compute' subcommand.
type computeCmd struct {
	equity   string
	years    int
	currency string
	name     string
	file     string
	path     string
	json     bool
}

func (*computeCmd) Name() string     { return "compute" }
func (*computeCmd) Synopsis() string { return "compute the equity multiple and IRR of cash flows" }
func (*computeCmd) Usage() string {
	return `proforma compute [-equity <amount>] [-years <n>] [-currency <code>] [-name <name>] [-json] -- <flow>...
proforma compute -f <scenario.json> [-json]
proforma compute -f <document.json> -path <jsonpath> [-equity <amount>] ...

  Computes the returns of yearly cash flows, year 0 first. The initial
  investment is a negative flow. Use -- before the flows so that negative
  flows are not read as flags.

  Flows can also be read from a scenario file (see 'proforma topic scenario'),
  or from any JSON document with a jsonpath expression. Flags override the
  values of the file.

Usage Examples:
$ proforma compute -years 2 -- -400000 0 650000
$ proforma compute -f tower.json -json
`
}

func (c *computeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.equity, "equity", "", "Investor equity. Defaults to the magnitude of the first flow.")
	f.IntVar(&c.years, "years", -1, "Project duration in years. Defaults to the number of flows minus one.")
	f.StringVar(&c.currency, "currency", "", "Currency of the amounts, for display only. Defaults to the configured currency.")
	f.StringVar(&c.name, "name", "", "Name of the scenario.")
	f.StringVar(&c.file, "f", "", "JSON file to read the scenario from.")
	f.StringVar(&c.path, "path", "", "jsonpath expression of the flows in the -f file, which is then read as any JSON document.")
	f.BoolVar(&c.json, "json", false, "Print the scenario and its returns as JSON")
}

func (c *computeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := c.scenario(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, proforma.ErrInvalidInput) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	logger.Debugw("computing", "scenario", s.Name, "equity", s.Equity, "flows", s.Flows.String())

	r, err := s.Compute(solver())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing returns: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := r.IRR.Err(); err != nil {
		logger.Infow("IRR not determined", "scenario", s.Name, "reason", err)
	}
	if err := printReturns(s, r, c.json); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing returns: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// scenario builds the scenario from the file, the positional flows, and the flags.
func (c *computeCmd) scenario(args []string) (proforma.Scenario, error) {
	var s proforma.Scenario
	switch {
	case c.file != "" && len(args) > 0:
		return s, fmt.Errorf("%w: flows cannot be given both as arguments and with -f", proforma.ErrInvalidInput)

	case c.file != "" && c.path == "":
		var err error
		if s, err = decodeScenarioFile(c.file); err != nil {
			return s, err
		}

	case c.file != "":
		flows, err := extractFlowsFile(c.file, c.path)
		if err != nil {
			return s, err
		}
		s.Name = strings.TrimSuffix(filepath.Base(c.file), filepath.Ext(c.file))
		s.Flows = flows

	case c.path != "":
		return s, fmt.Errorf("%w: -path requires -f", proforma.ErrInvalidInput)

	default:
		flows, err := parseFlows(args)
		if err != nil {
			return s, err
		}
		s.Name = "Cash flows"
		s.Flows = flows
	}

	if c.name != "" {
		s.Name = c.name
	}
	if c.currency != "" {
		s.Currency = c.currency
	}
	if s.Currency == "" {
		s.Currency = defaultCurrency()
	}
	if c.equity != "" {
		e, err := decimal.NewFromString(c.equity)
		if err != nil {
			return s, fmt.Errorf("%w: invalid equity %q: %w", proforma.ErrInvalidInput, c.equity, err)
		}
		s.Equity = e
	} else if s.Equity.IsZero() {
		s.Equity = s.Flows.Initial().Abs()
	}
	if c.years >= 0 {
		s.Duration = c.years
	} else if c.file == "" || c.path != "" {
		s.Duration = max(len(s.Flows)-1, 0)
	}
	return s, s.Validate()
}

// parseFlows parses the positional flows.
func parseFlows(args []string) (proforma.CashFlows, error) {
	flows := make(proforma.CashFlows, 0, len(args))
	for _, arg := range args {
		// a trailing comma is accepted to paste lists.
		v, err := decimal.NewFromString(strings.TrimSuffix(strings.ReplaceAll(arg, "_", ""), ","))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid cash flow %q: %w", proforma.ErrInvalidInput, arg, err)
		}
		flows = append(flows, v)
	}
	return flows, nil
}
