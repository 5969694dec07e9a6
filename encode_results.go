package clearing

import (
	"encoding/csv"
	"io"
	"iter"
	"strconv"
)

// EncodeResults writes one CSV row per account, with a header:
//
//	client,available,held,total,locked
//
// Amounts are rendered back from the scaled representation as plain decimal
// values. Row order follows the iteration order, which is unspecified across
// shards.
func EncodeResults(w io.Writer, accounts iter.Seq[AccountResult]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for result := range accounts {
		row := []string{
			strconv.FormatUint(uint64(result.Client), 10),
			result.Available.String(),
			result.Held.String(),
			result.Total.String(),
			strconv.FormatBool(result.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
