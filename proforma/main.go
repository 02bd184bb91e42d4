package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/proforma/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Answers shell completion requests, and exits, when run by the shell.
	cmd.Completion().Complete("proforma")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	status := commander.Execute(context.Background())
	cmd.Sync()
	os.Exit(int(status))
}
