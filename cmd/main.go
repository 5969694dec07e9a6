// Package cmd implements the CLI application of the clearing engine.
package cmd

import (
	"flag"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/etnz/clearing"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to declare the subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&processCmd{}, "clearing")
	c.Register(&checkCmd{}, "clearing")
	c.Register(&reportCmd{}, "clearing")

	c.Register(&topicCmd{}, "documentation")
}

// openInput opens the command's positional input file, or stdin for "" or
// "-".
func openInput(f *flag.FlagSet) (io.ReadCloser, error) {
	name := f.Arg(0)
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// rejectionLogger returns the logger for rejected-transaction reports:
// stderr, or discarded when quiet.
func rejectionLogger(quiet bool) *log.Logger {
	if quiet {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", 0)
}

// runEngine streams every transaction of r through a fresh router and
// returns the router after shutdown, ready for account iteration. A shards
// value of 0 uses one shard per CPU.
func runEngine(r io.Reader, shards int, rejected *log.Logger) *clearing.Router {
	if shards == 0 {
		shards = runtime.NumCPU()
	}
	router := clearing.NewRouter(shards, rejected)
	router.Start()
	for tx := range clearing.DecodeTransactions(r, rejected) {
		router.Route(tx)
	}
	router.Close()
	return router
}
