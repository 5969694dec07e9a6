package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/clearing/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	shards   int
	currency string
	quiet    bool
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "settle a transaction stream and display a readable account statement"
}
func (*reportCmd) Usage() string {
	return `pce report [-shards <n>] [-currency <code>] [-q] [transactions.csv]

  Like 'process', but renders the final account balances as a human-readable
  statement instead of CSV, with amounts formatted in the given currency.

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.shards, "shards", 0, "Number of concurrent shards. Defaults to the number of CPUs.")
	f.StringVar(&c.currency, "currency", "USD", "ISO currency code used to format amounts.")
	f.BoolVar(&c.quiet, "q", false, "Do not report rejected transactions.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := openInput(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	router := runEngine(in, c.shards, rejectionLogger(c.quiet))
	results := slices.Collect(router.Accounts())

	printMarkdown(renderer.Statement(results, c.currency))
	return subcommands.ExitSuccess
}
