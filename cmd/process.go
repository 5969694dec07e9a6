package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/clearing"
	"github.com/google/subcommands"
)

// processCmd holds the flags for the 'process' subcommand.
type processCmd struct {
	shards int
	output string
	quiet  bool
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "settle a transaction stream into final account balances"
}
func (*processCmd) Usage() string {
	return `pce process [-shards <n>] [-o <file>] [-q] [transactions.csv]

  Reads a CSV transaction stream from the given file (or stdin), applies
  every transaction through the sharded engine, and writes the final state
  of every account as CSV.

  Rejected transactions and malformed rows are reported on stderr and
  skipped; they never stop the run.

Usage Examples:
# Settle a file and capture the account balances.
$ pce process transactions.csv > accounts.csv

`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.shards, "shards", 0, "Number of concurrent shards. Defaults to the number of CPUs.")
	f.StringVar(&c.output, "o", "", "Write the account CSV to this file instead of stdout.")
	f.BoolVar(&c.quiet, "q", false, "Do not report rejected transactions.")
}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := openInput(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	router := runEngine(in, c.shards, rejectionLogger(c.quiet))

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}
	if err := clearing.EncodeResults(out, router.Accounts()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
