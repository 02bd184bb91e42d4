package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/proforma"
	"github.com/google/subcommands"
)

type exampleCmd struct {
	json bool
}

func (*exampleCmd) Name() string     { return "example" }
func (*exampleCmd) Synopsis() string { return "display the pro forma of a sample development project" }
func (*exampleCmd) Usage() string {
	return `proforma example [-json]

  Computes the returns of a development project sold for $2M, where the
  investor puts $400,000 in year 0 and receives $650,000 at the sale in year 2.
`
}

func (c *exampleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the scenario and its returns as JSON")
}

func (c *exampleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := proforma.DevelopmentExample()
	r, err := s.Compute(solver())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing returns: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printReturns(s, r, c.json); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing returns: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
