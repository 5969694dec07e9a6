// Package renderer converts final account state into human-readable markdown
// reports.
package renderer

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/Rhymond/go-money"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/etnz/clearing"
)

// Statement renders the final account balances as a markdown report, with
// amounts formatted in the given ISO currency. Accounts are listed by
// ascending client id.
func Statement(results []clearing.AccountResult, currency string) string {
	results = slices.Clone(results)
	slices.SortFunc(results, func(a, b clearing.AccountResult) int {
		return int(a.Client) - int(b.Client)
	})

	var rows [][]string
	var total decimal.Decimal
	locked := 0
	for _, r := range results {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(r.Client), 10),
			formatMoney(r.Available, currency),
			formatMoney(r.Held, currency),
			formatMoney(r.Total, currency),
			lockedMark(r.Locked),
		})
		total = total.Add(decimal.NewFromUint64(uint64(r.Total)))
		if r.Locked {
			locked++
		}
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Account Statement")
	doc.PlainText(fmt.Sprintf("%d accounts, %d locked, %s across all accounts.",
		len(results), locked, formatDecimal(total, currency)))
	doc.Table(md.TableSet{
		Header: []string{"Client", "Available", "Held", "Total", "Locked"},
		Rows:   rows,
	})
	if err := doc.Build(); err != nil {
		return fmt.Sprintf("error rendering statement: %v", err)
	}
	return buf.String()
}

func lockedMark(locked bool) string {
	if locked {
		return "locked"
	}
	return ""
}

// formatMoney renders a scaled amount in the given currency, using the
// currency's own fraction and symbol.
func formatMoney(a clearing.Amount, code string) string {
	return formatDecimal(decimal.NewFromUint64(uint64(a)), code)
}

func formatDecimal(scaled decimal.Decimal, code string) string {
	// to get a never-nil currency, go through the money constructor
	cur := *money.New(0, code).Currency()
	units := scaled.
		Div(decimal.NewFromInt(clearing.AmountBase)).
		Shift(int32(cur.Fraction))
	return cur.Formatter().Format(units.IntPart())
}
