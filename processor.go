package clearing

import "fmt"

// Process applies one transaction to its account and the shard's transaction
// history. It either fully commits or leaves both stores untouched: every
// precondition is checked before the first mutation.
//
// The account is created lazily on first reference. A locked account rejects
// every transaction type with ErrAccountLocked.
func Process(accounts *AccountStore, records *RecordStore, tx Transaction) error {
	account := accounts.Ensure(tx.Client)
	if account.Locked {
		return ErrAccountLocked
	}
	switch tx.Type {
	case Deposit:
		return deposit(account, records, tx)
	case Withdrawal:
		return withdrawal(account, records, tx)
	case Dispute:
		return dispute(account, records, tx)
	case Resolve:
		return resolve(account, records, tx)
	case Chargeback:
		return chargeback(account, records, tx)
	default:
		return fmt.Errorf("unknown transaction type: %q", tx.Type)
	}
}

func deposit(account *Account, records *RecordStore, tx Transaction) error {
	if tx.Amount == nil {
		return ErrEmptyAmount
	}
	// The duplicate guard runs before any balance mutation, so a replayed
	// deposit has zero effect.
	if records.Has(tx.Tx) {
		return ErrTransactionDuplicate
	}
	if err := account.Deposit(*tx.Amount); err != nil {
		return err
	}
	// only accepted deposits are retained
	records.Put(tx)
	return nil
}

func withdrawal(account *Account, records *RecordStore, tx Transaction) error {
	if tx.Amount == nil {
		return ErrEmptyAmount
	}
	if records.Has(tx.Tx) {
		return ErrTransactionDuplicate
	}
	if account.Available < *tx.Amount {
		return ErrInsufficientBalance
	}
	account.Available -= *tx.Amount
	// withdrawals are not retained: they cannot be disputed later
	return nil
}

func dispute(account *Account, records *RecordStore, tx Transaction) error {
	record, err := reference(records, tx)
	if err != nil {
		return err
	}
	switch record.State {
	case Disputed:
		// already disputed, probably a replay: harmless
		return nil
	case Refunded:
		return ErrAlreadyRefunded
	}
	if record.Tx.Type != Deposit {
		return fmt.Errorf("%w: tx %d is a %s", ErrDisputeWrongType, record.Tx.Tx, record.Tx.Type)
	}
	if record.Tx.Amount == nil {
		return ErrEmptyAmount
	}
	// An intervening withdrawal may have depleted available below the
	// disputed amount; the dispute is then rejected rather than partially
	// held.
	if err := account.Hold(*record.Tx.Amount); err != nil {
		return err
	}
	record.State = Disputed
	return nil
}

func resolve(account *Account, records *RecordStore, tx Transaction) error {
	record, err := reference(records, tx)
	if err != nil {
		return err
	}
	// not under dispute (never disputed, or already settled): nothing to do
	if record.State != Disputed {
		return nil
	}
	if record.Tx.Amount == nil {
		return ErrEmptyAmount
	}
	if err := account.Release(*record.Tx.Amount); err != nil {
		return err
	}
	// back to Valid: the deposit can be disputed again
	record.State = Valid
	return nil
}

func chargeback(account *Account, records *RecordStore, tx Transaction) error {
	record, err := reference(records, tx)
	if err != nil {
		return err
	}
	if record.State != Disputed {
		return nil
	}
	if record.Tx.Amount == nil {
		return ErrEmptyAmount
	}
	amount := *record.Tx.Amount
	if account.Held < amount {
		return ErrInsufficientHeldBalance
	}
	account.Held -= amount
	account.Locked = true
	record.State = Refunded
	return nil
}

// reference validates the common preconditions of the dispute lifecycle
// types: no amount of their own, a known referenced transaction, and a
// matching client.
func reference(records *RecordStore, tx Transaction) (*Record, error) {
	if tx.Amount != nil {
		return nil, ErrAmountShouldBeEmpty
	}
	record, err := records.Get(tx.Tx)
	if err != nil {
		return nil, err
	}
	if record.Tx.Client != tx.Client {
		return nil, fmt.Errorf("%w: tx %d belongs to client %d, not %d",
			ErrMismatchedClient, tx.Tx, record.Tx.Client, tx.Client)
	}
	return record, nil
}
