package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/etnz/clearing"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	quiet bool
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "validate a transaction stream without applying it"
}
func (*checkCmd) Usage() string {
	return `pce check [-q] [transactions.csv]

  Parses the transaction stream and reports what a 'process' run would read:
  counts per transaction type, distinct clients, duplicated deposit and
  withdrawal ids, and the number of malformed rows. No transaction is
  applied.

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.quiet, "q", false, "Do not report individual malformed rows.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := openInput(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	var malformed int
	counter := countingWriter{count: &malformed}
	errlog := log.New(counter, "", 0)
	if !c.quiet {
		errlog = log.New(io.MultiWriter(counter, os.Stderr), "", 0)
	}

	total := 0
	types := make(map[clearing.TransactionType]int)
	clients := make(map[clearing.ClientID]struct{})
	ids := make(map[clearing.TxID]int)
	duplicates := 0
	for tx := range clearing.DecodeTransactions(in, errlog) {
		total++
		types[tx.Type]++
		clients[tx.Client] = struct{}{}
		if tx.Type == clearing.Deposit || tx.Type == clearing.Withdrawal {
			ids[tx.Tx]++
			if ids[tx.Tx] == 2 {
				duplicates++
			}
		}
	}

	fmt.Printf("%d transactions, %d clients, %d malformed rows\n", total, len(clients), malformed)
	for _, txType := range []clearing.TransactionType{
		clearing.Deposit, clearing.Withdrawal, clearing.Dispute, clearing.Resolve, clearing.Chargeback,
	} {
		if n := types[txType]; n > 0 {
			fmt.Printf("  %-10s %d\n", txType, n)
		}
	}
	if duplicates > 0 {
		fmt.Printf("Warning: %d transaction ids are reused; 'process' will reject the replays.\n", duplicates)
	}
	return subcommands.ExitSuccess
}

// countingWriter counts the lines reported to a logger.
type countingWriter struct{ count *int }

func (w countingWriter) Write(p []byte) (int, error) {
	*w.count++
	return len(p), nil
}
