package clearing

import "errors"

// Every rejection the engine can produce. All of them are per-transaction
// business rejections: the offending transaction is skipped, the account is
// left exactly as it was, and processing continues.
var (
	ErrBalanceOverflow         = errors.New("balance overflow")
	ErrAccountLocked           = errors.New("account is locked")
	ErrTransactionNotFound     = errors.New("referenced transaction not found")
	ErrTransactionDuplicate    = errors.New("duplicate transaction id")
	ErrInsufficientBalance     = errors.New("insufficient available funds")
	ErrInsufficientHeldBalance = errors.New("insufficient held funds")
	ErrAlreadyRefunded         = errors.New("transaction already charged back")
	ErrDisputeWrongType        = errors.New("only deposits can be disputed")
	ErrMismatchedClient        = errors.New("client does not own the referenced transaction")
	ErrEmptyAmount             = errors.New("transaction amount is required")
	ErrAmountShouldBeEmpty     = errors.New("transaction amount must be empty")
)
