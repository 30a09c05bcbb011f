/*
Package ledger implements the wallet ledger transaction engine.

The engine validates an operation, atomically mutates one or two
user-wallet balances under concurrent access, produces immutable
transaction records (including double-entry linkage for transfers), and
appends a balance audit trail.

Structure:

  - Validator: pure, stateless checks on operation shape.
  - BalanceManager: applies a signed amount to a locked user-wallet,
    persists it and appends one BalanceHistory row per mutation.
  - Processors: one per transaction type (deposit, withdraw, transfer),
    each composing the validator, the locked balance accessor and the
    balance manager into the full protocol for its type.
  - Dispatcher: selects the processor that can handle a requested type.
  - Service: resolves the target wallet, dispatches, and maintains the
    read cache.

Every processor runs its whole protocol inside one database transaction:
validate, lock, re-validate sufficiency against the locked row, mutate,
persist. A failure at any step rolls back every write of the operation,
so a transfer can never leave only one side of its double-entry pair
persisted.
*/
package ledger
