package clearing

import (
	"iter"
	"log"
	"sync"
)

// queueCapacity bounds each shard's queue. A full queue suspends the
// submitting caller (backpressure), keeping memory bounded regardless of the
// input size.
const queueCapacity = 256

// shard is one worker: it exclusively owns one partition of the accounts and
// of the transaction history, and drains its queue until the queue is closed
// and empty. No other goroutine ever touches its stores, so access is
// serialized by construction rather than by a lock.
type shard struct {
	accounts *AccountStore
	records  *RecordStore
	queue    chan Transaction
}

func newShard() *shard {
	return &shard{
		accounts: NewAccountStore(),
		records:  NewRecordStore(),
		queue:    make(chan Transaction, queueCapacity),
	}
}

// run drains the queue. A rejected transaction is reported and skipped; a
// rejection never stops the worker or corrupts already-applied state.
func (s *shard) run(rejected *log.Logger) {
	for tx := range s.queue {
		if err := Process(s.accounts, s.records, tx); err != nil {
			rejected.Printf("transaction %d rejected: %v", tx.Tx, err)
		}
	}
}

// Router partitions the transaction stream over a fixed set of shards by
// client id, so that all transactions of one client are handled by the same
// worker, in submission order.
//
// The shard count is fixed for the lifetime of the Router; accounts never
// migrate between shards.
type Router struct {
	shards   []*shard
	rejected *log.Logger
	wg       sync.WaitGroup
}

// NewRouter creates a router with the given number of shards (at least one).
// Rejected transactions are reported to the rejected logger; pass nil for the
// standard logger.
func NewRouter(shards int, rejected *log.Logger) *Router {
	if shards < 1 {
		shards = 1
	}
	if rejected == nil {
		rejected = log.Default()
	}
	r := &Router{
		shards:   make([]*shard, 0, shards),
		rejected: rejected,
	}
	for range shards {
		r.shards = append(r.shards, newShard())
	}
	return r
}

// Shards returns the number of shards.
func (r *Router) Shards() int { return len(r.shards) }

// Start spawns one worker goroutine per shard.
func (r *Router) Start() {
	for _, s := range r.shards {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			s.run(r.rejected)
		}()
	}
}

// Route delivers a transaction to the shard owning its client. It blocks when
// that shard's queue is full. Routing after Close is a programming error and
// panics.
func (r *Router) Route(tx Transaction) {
	r.shards[int(tx.Client)%len(r.shards)].queue <- tx
}

// Close closes every shard queue and waits for the workers to drain them and
// exit. Buffered transactions are always processed; shutdown never discards
// pending work.
func (r *Router) Close() {
	for _, s := range r.shards {
		close(s.queue)
	}
	r.wg.Wait()
}

// Accounts yields the final state of every known account exactly once, in
// unspecified order. It must only be called after Close.
func (r *Router) Accounts() iter.Seq[AccountResult] {
	return func(yield func(AccountResult) bool) {
		for _, s := range r.shards {
			for account := range s.accounts.All() {
				if !yield(account.Result()) {
					return
				}
			}
		}
	}
}
