package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/etnz/proforma/renderer"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

type batchCmd struct {
	jobs int
}

func (*batchCmd) Name() string     { return "batch" }
func (*batchCmd) Synopsis() string { return "compare the returns of several scenario files" }
func (*batchCmd) Usage() string {
	return `proforma batch [-j <n>] <scenario.json>...

  Computes every scenario file and prints a comparison table, in the order of
  the arguments. Fails on the first invalid file.
`
}

func (c *batchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.jobs, "j", runtime.NumCPU(), "Number of scenarios computed concurrently.")
}

func (c *batchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	files := f.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one scenario file is required")
		return subcommands.ExitUsageError
	}
	if c.jobs < 1 {
		fmt.Fprintf(os.Stderr, "Error: -j must be positive, got %d\n", c.jobs)
		return subcommands.ExitUsageError
	}

	reports, err := c.compute(ctx, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderBatch(reports))
	return subcommands.ExitSuccess
}

// compute computes the report of every file, concurrently.
func (c *batchCmd) compute(ctx context.Context, files []string) ([]*renderer.Report, error) {
	reports := make([]*renderer.Report, len(files))
	solver := solver()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.jobs)
	for i, file := range files {
		i, file := i, file // per-iteration copies (go 1.21 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := decodeScenarioFile(file)
			if err != nil {
				return err
			}
			r, err := s.Compute(solver)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			logger.Debugw("scenario computed", "file", file, "equityMultiple", r.EquityMultiple.String(), "irr", r.IRR.String())
			reports[i] = renderer.NewReport(s, r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
