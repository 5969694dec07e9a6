package clearing

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"strconv"
	"strings"
)

// This file reads a transaction stream in CSV form:
//
//	type,       client, tx, amount
//	deposit,    7,      1,  100.0
//	dispute,    7,      1,
//
// Fields may carry surrounding whitespace, the amount column may be missing
// entirely for the dispute lifecycle types, and a header row is optional.
// A malformed row is reported and skipped: upstream data problems never stop
// the stream.

// DecodeTransactions iterates over the transactions of a CSV stream.
// Malformed rows are reported to errlog (nil for the standard logger) and
// skipped.
func DecodeTransactions(r io.Reader, errlog *log.Logger) iter.Seq[Transaction] {
	if errlog == nil {
		errlog = log.Default()
	}
	return func(yield func(Transaction) bool) {
		cr := csv.NewReader(bufio.NewReader(r))
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true

		for line := 1; ; line++ {
			row, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				errlog.Printf("line %d: %v", line, err)
				continue
			}
			if line == 1 && isHeader(row) {
				continue
			}
			tx, err := parseRow(row)
			if err != nil {
				errlog.Printf("line %d: %v", line, err)
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// isHeader recognizes the conventional "type,client,tx,amount" header row.
func isHeader(row []string) bool {
	return len(row) > 0 && strings.TrimSpace(row[0]) == "type"
}

// parseRow converts one CSV row into a Transaction.
func parseRow(row []string) (Transaction, error) {
	if len(row) < 3 {
		return Transaction{}, fmt.Errorf("expected at least 3 fields, got %d", len(row))
	}
	txType, err := ParseTransactionType(strings.TrimSpace(row[0]))
	if err != nil {
		return Transaction{}, err
	}
	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid client id %q: %w", row[1], err)
	}
	id, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction id %q: %w", row[2], err)
	}
	tx := Transaction{
		Type:   txType,
		Client: ClientID(client),
		Tx:     TxID(id),
	}
	if len(row) > 3 {
		if field := strings.TrimSpace(row[3]); field != "" {
			amount, err := ParseAmount(field)
			if err != nil {
				return Transaction{}, err
			}
			tx.Amount = &amount
		}
	}
	return tx, nil
}
