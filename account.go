package clearing

import "iter"

// Account is the balance bookkeeping for one client. Available and Held are
// kept separately: held funds are frozen pending dispute resolution and
// excluded from the spendable balance. A locked account (the aftermath of a
// chargeback) accepts no further transactions of any kind.
//
// An account is created lazily on first reference, never deleted, and owned
// by exactly one shard for its whole lifetime.
type Account struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Locked    bool
}

// NewAccount creates an empty, unlocked account for a client.
func NewAccount(client ClientID) *Account {
	return &Account{Client: client}
}

// Deposit credits the available balance. The sum available+held+amount is
// checked first so an overflowing deposit leaves the account untouched.
func (a *Account) Deposit(amount Amount) error {
	total, err := a.Available.Add(a.Held)
	if err != nil {
		return err
	}
	if _, err := total.Add(amount); err != nil {
		return err
	}
	a.Available += amount
	return nil
}

// Hold freezes amount, moving it from available to held.
func (a *Account) Hold(amount Amount) error {
	if a.Available < amount {
		return ErrInsufficientBalance
	}
	held, err := a.Held.Add(amount)
	if err != nil {
		return err
	}
	a.Held = held
	a.Available -= amount
	return nil
}

// Release unfreezes amount, moving it back from held to available.
func (a *Account) Release(amount Amount) error {
	if a.Held < amount {
		return ErrInsufficientHeldBalance
	}
	available, err := a.Available.Add(amount)
	if err != nil {
		return err
	}
	a.Available = available
	a.Held -= amount
	return nil
}

// AccountStore is the in-memory account storage of a single shard. It is only
// ever touched by the shard's own worker, so it needs no synchronization.
type AccountStore struct {
	accounts map[ClientID]*Account
}

// NewAccountStore creates an empty store.
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[ClientID]*Account)}
}

// Ensure returns the client's account, creating it empty on first reference.
func (s *AccountStore) Ensure(client ClientID) *Account {
	account, ok := s.accounts[client]
	if !ok {
		account = NewAccount(client)
		s.accounts[client] = account
	}
	return account
}

// Len returns the number of known accounts.
func (s *AccountStore) Len() int { return len(s.accounts) }

// All iterates over every account in the store, in unspecified order.
func (s *AccountStore) All() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, account := range s.accounts {
			if !yield(account) {
				return
			}
		}
	}
}

// AccountResult is the externally visible final state of one account, as
// emitted in the output statement.
type AccountResult struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Total     Amount
	Locked    bool
}

// Result snapshots the account into an output record. Total cannot overflow:
// every mutation keeps available+held within range.
func (a *Account) Result() AccountResult {
	return AccountResult{
		Client:    a.Client,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Available + a.Held,
		Locked:    a.Locked,
	}
}
