package clearing

import (
	"errors"
	"math"
	"testing"
)

func TestNewAccount(t *testing.T) {
	account := NewAccount(1)
	if account.Client != 1 {
		t.Errorf("Client = %d, want 1", account.Client)
	}
	if account.Available != 0 || account.Held != 0 || account.Locked {
		t.Errorf("new account not empty: %+v", account)
	}
}

func TestAccount_balanceCycle(t *testing.T) {
	account := NewAccount(1)

	if err := account.Deposit(100); err != nil {
		t.Fatalf("Deposit() error = %v", err)
	}
	if account.Available != 100 || account.Held != 0 {
		t.Fatalf("after deposit: available=%d held=%d, want 100, 0", account.Available, account.Held)
	}

	if err := account.Hold(50); err != nil {
		t.Fatalf("Hold() error = %v", err)
	}
	if account.Available != 50 || account.Held != 50 {
		t.Fatalf("after hold: available=%d held=%d, want 50, 50", account.Available, account.Held)
	}

	if err := account.Release(50); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if account.Available != 100 || account.Held != 0 {
		t.Fatalf("after release: available=%d held=%d, want 100, 0", account.Available, account.Held)
	}
}

func TestAccount_Deposit_overflow(t *testing.T) {
	account := NewAccount(1)
	account.Available = math.MaxUint64 - 10
	account.Held = 5

	// available+held already saturates the range
	if err := account.Deposit(10); !errors.Is(err, ErrBalanceOverflow) {
		t.Errorf("Deposit() error = %v, want ErrBalanceOverflow", err)
	}
	if account.Available != math.MaxUint64-10 || account.Held != 5 {
		t.Errorf("account mutated by rejected deposit: %+v", account)
	}

	if err := account.Deposit(5); err != nil {
		t.Errorf("Deposit() within range error = %v", err)
	}
}

func TestAccount_Hold_insufficient(t *testing.T) {
	account := NewAccount(1)
	account.Available = 10
	if err := account.Hold(11); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("Hold() error = %v, want ErrInsufficientBalance", err)
	}
	if account.Available != 10 || account.Held != 0 {
		t.Errorf("account mutated by rejected hold: %+v", account)
	}
}

func TestAccount_Release_insufficient(t *testing.T) {
	account := NewAccount(1)
	account.Held = 10
	if err := account.Release(11); !errors.Is(err, ErrInsufficientHeldBalance) {
		t.Errorf("Release() error = %v, want ErrInsufficientHeldBalance", err)
	}
}

func TestAccountStore_Ensure(t *testing.T) {
	store := NewAccountStore()
	a := store.Ensure(7)
	a.Available = 42
	if b := store.Ensure(7); b != a {
		t.Errorf("Ensure(7) returned a different account on second call")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestAccount_Result(t *testing.T) {
	account := &Account{Client: 3, Available: 100, Held: 25, Locked: true}
	got := account.Result()
	want := AccountResult{Client: 3, Available: 100, Held: 25, Total: 125, Locked: true}
	if got != want {
		t.Errorf("Result() = %+v, want %+v", got, want)
	}
}
