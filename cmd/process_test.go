package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// createTempTransactions writes a transaction CSV into a temp file.
func createTempTransactions(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "transactions.csv")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return name
}

func TestProcessCommand(t *testing.T) {
	input := `type, client, tx, amount
deposit, 7, 1, 100.0
withdrawal, 7, 2, 30.5
deposit, 9, 3, 10.0
dispute, 9, 3,
`
	inFile := createTempTransactions(t, input)
	outFile := filepath.Join(t.TempDir(), "accounts.csv")

	cmd := &processCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-o", outFile, "-q", "-shards", "4", inFile}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}

	content, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if lines[0] != "client,available,held,total,locked" {
		t.Errorf("header = %q", lines[0])
	}
	rows := lines[1:]
	slices.Sort(rows)
	want := []string{
		"7,69.5,0,69.5,false",
		"9,0,10,10,false",
	}
	if !slices.Equal(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestProcessCommand_missingInput(t *testing.T) {
	cmd := &processCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{filepath.Join(t.TempDir(), "nope.csv")}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Errorf("Execute() = %v, want ExitFailure", status)
	}
}
