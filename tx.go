package clearing

import "fmt"

// ClientID identifies a client account.
type ClientID uint16

// TxID identifies a transaction. Deposits and withdrawals must carry an id
// that is unique over the whole input stream.
type TxID uint32

// TransactionType is a typed string identifying a transaction command.
type TransactionType string

// Transaction types accepted by the engine.
const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
	Dispute    TransactionType = "dispute"
	Resolve    TransactionType = "resolve"
	Chargeback TransactionType = "chargeback"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case Deposit, Withdrawal, Dispute, Resolve, Chargeback:
		return t, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is one immutable input record. Amount is nil for the dispute
// lifecycle types (dispute, resolve, chargeback), which reference a prior
// deposit by Tx instead of carrying a value of their own.
type Transaction struct {
	Type   TransactionType
	Client ClientID
	Tx     TxID
	Amount *Amount
}

// NewAmount is a small helper to take the address of an Amount literal when
// building transactions.
func NewAmount(a Amount) *Amount { return &a }
