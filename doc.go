// Package clearing implements a sharded, concurrent clearing engine for a
// stream of client payment transactions. It ingests deposits, withdrawals and
// the dispute lifecycle (dispute, resolve, chargeback) and produces the final
// balance of every client account.
//
// The core functionalities include:
//   - Ledger Entities: fixed-point account balances (available and held funds)
//     and the per-deposit record that carries the dispute state machine.
//   - Transaction Processing: a pure state machine that applies one transaction
//     to one account, either committing fully or leaving the account untouched,
//     with overflow-checked arithmetic throughout.
//   - Sharded Execution: a router that partitions accounts over a fixed set of
//     workers, each exclusively owning its slice of accounts and records, so
//     that no lock is needed and per-client ordering is preserved.
//   - Data Persistence: reading transaction streams from CSV and writing the
//     final account statements back as CSV.
//
// This package serves as the foundational logic for the `pce` command-line
// tool.
package clearing
