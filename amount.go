package clearing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value stored as an unsigned scaled integer:
// AmountBase scaled units make one unit of currency. Keeping balances as
// integers avoids floating-point drift; every addition is overflow-checked so
// a balance can never silently wrap.
type Amount uint64

// AmountBase is the fixed scale factor (1000 scaled units = 1.000).
const AmountBase = 1000

var amountBase = decimal.NewFromInt(AmountBase)

// ParseAmount converts a decimal text value (e.g. "12.3456") into a scaled
// Amount. Negative values are rejected. Fractional digits beyond the scale
// are truncated.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("negative amount %q", s)
	}
	scaled := d.Mul(amountBase).Truncate(0).BigInt()
	if !scaled.IsUint64() {
		return 0, fmt.Errorf("amount %q is out of range: %w", s, ErrBalanceOverflow)
	}
	return Amount(scaled.Uint64()), nil
}

// String renders the amount as a plain decimal value ("1.5" for 1500 scaled
// units).
func (a Amount) String() string {
	return decimal.NewFromUint64(uint64(a)).Div(amountBase).String()
}

// Add returns a+b, or ErrBalanceOverflow when the sum does not fit.
func (a Amount) Add(b Amount) (Amount, error) {
	sum := a + b
	if sum < a {
		return 0, ErrBalanceOverflow
	}
	return sum, nil
}
