package clearing

// RecordState is the dispute lifecycle state attached to a retained deposit:
//
//	Valid → Disputed → Valid    (a resolved deposit can be disputed again)
//	Valid → Disputed → Refunded (terminal, the owning account is locked)
type RecordState int

const (
	// Valid is the state of an accepted, undisputed deposit.
	Valid RecordState = iota
	// Disputed marks a deposit whose amount is currently held.
	Disputed
	// Refunded marks a charged-back deposit. Terminal.
	Refunded
)

func (s RecordState) String() string {
	switch s {
	case Valid:
		return "valid"
	case Disputed:
		return "disputed"
	case Refunded:
		return "refunded"
	default:
		return "unknown"
	}
}

// Record retains an accepted deposit together with its dispute state.
// Withdrawals are intentionally not retained: they are not disputable in this
// design.
type Record struct {
	Tx    Transaction
	State RecordState
}

// RecordStore is the in-memory transaction history of a single shard, indexed
// by transaction id. Like AccountStore it is owned by one worker and needs no
// synchronization.
type RecordStore struct {
	records map[TxID]*Record
}

// NewRecordStore creates an empty store.
func NewRecordStore() *RecordStore {
	return &RecordStore{records: make(map[TxID]*Record)}
}

// Get returns the record for a transaction id, or ErrTransactionNotFound.
func (s *RecordStore) Get(id TxID) (*Record, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	return record, nil
}

// Has reports whether a transaction id is already retained.
func (s *RecordStore) Has(id TxID) bool {
	_, ok := s.records[id]
	return ok
}

// Put retains an accepted deposit in the Valid state.
func (s *RecordStore) Put(tx Transaction) {
	s.records[tx.Tx] = &Record{Tx: tx, State: Valid}
}
