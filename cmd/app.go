// Package cmd implements the proforma command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&exampleCmd{}, "returns")
	c.Register(&computeCmd{}, "returns")
	c.Register(&batchCmd{}, "returns")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	Verbose    = flag.Bool("v", false, "Log diagnostics to stderr")
	raw        = flag.Bool("raw", false, "Print reports as plain markdown, without terminal styling")
	configFile = flag.String("config", "", "Path to a configuration file. Defaults to .proforma.yaml in the working directory, if any")
)

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// logger is replaced by Setup, it discards everything until then.
var logger = zap.NewNop().Sugar()

// Setup prepares the logger and the configuration once the global flags are
// parsed.
func Setup() error {
	if err := setupLogger(*Verbose); err != nil {
		return err
	}
	return LoadConfig(*configFile)
}

// Sync flushes the logger.
func Sync() { _ = logger.Sync() }

func setupLogger(verbose bool) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("cannot create logger: %w", err)
	}
	logger = l.Sugar()
	return nil
}

// printMarkdown renders md for the terminal, unless raw output is requested.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		logger.Warnw("cannot create markdown renderer, printing raw markdown", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Warnw("cannot render markdown, printing raw markdown", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
