// Package ledger implements the account state machine at the heart of the
// transaction replay: per-client balances, the disputable transaction
// history, and the transition rules for the five record kinds.
//
// The engine is a deterministic fold over an ordered record stream. Records
// are applied strictly one at a time, in arrival order; that order is the
// only source of truth for dispute validity. A rejected record leaves all
// state exactly as it was, so stopping after any prefix of the stream
// yields a valid, self-consistent snapshot.
//
// Example usage:
//
//	eng := ledger.NewEngine()
//	for _, rec := range records {
//	    if err := eng.Apply(rec); err != nil {
//	        // Record-level rejections implement ledger.RecordError and
//	        // are safe to log and skip.
//	    }
//	}
//	for _, snap := range eng.Snapshots() {
//	    fmt.Println(snap.Client, snap.Available, snap.Held, snap.Total)
//	}
package ledger

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Engine owns the account map and the disputable transaction history for a
// single replay run. Nothing outside the engine mutates either map. It is
// not safe for concurrent use; the record stream has a strict order and the
// engine relies on it.
type Engine struct {
	accounts map[ClientID]*Account
	history  map[TxID]*transaction
}

// NewEngine creates an engine with no accounts and no history. One engine
// serves one replay; construct a fresh one per stream.
func NewEngine() *Engine {
	return &Engine{
		accounts: make(map[ClientID]*Account),
		history:  make(map[TxID]*transaction),
	}
}

// account returns the client's account, creating an empty unlocked one the
// first time the client is referenced. Creation happens even when the
// referencing record is subsequently rejected: every client that ever
// appeared shows up in the final snapshot.
func (e *Engine) account(client ClientID) *Account {
	acct, ok := e.accounts[client]
	if !ok {
		acct = &Account{Client: client}
		e.accounts[client] = acct
	}
	return acct
}

// Apply runs one record through the state machine. On success the engine is
// mutated in place; on failure it is left exactly as it was and the error
// says why the record was rejected. Rejections implement RecordError and
// are non-fatal: the caller skips the record and keeps replaying.
func (e *Engine) Apply(rec Record) error {
	acct := e.account(rec.Client)
	if acct.Locked {
		return &AccountLockedError{Client: rec.Client}
	}

	switch rec.Kind {
	case Deposit, Withdrawal:
		return e.applyTransfer(acct, rec)
	case Dispute:
		return e.applyDispute(acct, rec)
	case Resolve:
		return e.applyResolve(acct, rec)
	case Chargeback:
		return e.applyChargeback(acct, rec)
	default:
		return fmt.Errorf("unhandled record kind %d", rec.Kind)
	}
}

// applyTransfer handles deposits and withdrawals, the two kinds that carry
// their own amount and create history entries.
func (e *Engine) applyTransfer(acct *Account, rec Record) error {
	if _, ok := e.history[rec.Tx]; ok {
		return &DuplicateTransactionError{Tx: rec.Tx}
	}
	if rec.Amount == nil {
		return &MissingAmountError{Kind: rec.Kind}
	}
	amount := *rec.Amount

	var next Account
	var err error
	if rec.Kind == Deposit {
		next, err = acct.deposit(amount)
	} else {
		next, err = acct.withdraw(amount)
	}
	if err != nil {
		return err
	}

	*acct = next
	e.history[rec.Tx] = &transaction{
		client: rec.Client,
		kind:   rec.Kind,
		amount: amount,
		state:  Clean,
	}
	return nil
}

// lookup finds the transaction a dispute, resolve or chargeback refers to
// and checks it belongs to the record's client. A mismatched client rejects
// the record; it is not silently ignored.
func (e *Engine) lookup(rec Record) (*transaction, error) {
	txn, ok := e.history[rec.Tx]
	if !ok {
		return nil, &UnknownTransactionError{Tx: rec.Tx}
	}
	if txn.client != rec.Client {
		return nil, &ClientMismatchError{Tx: rec.Tx, Owner: txn.client, Client: rec.Client}
	}
	return txn, nil
}

// applyDispute moves the original transaction amount from available to
// held. The stored amount is used even for withdrawals; the engine never
// tries to reverse the original effect heuristically.
func (e *Engine) applyDispute(acct *Account, rec Record) error {
	txn, err := e.lookup(rec)
	if err != nil {
		return err
	}
	if txn.state == Disputed {
		return &AlreadyDisputedError{Tx: rec.Tx}
	}

	// Available must cover the disputed amount; a shortfall means the
	// books are inconsistent and the record is rejected.
	next, err := acct.dispute(txn.amount)
	if err != nil {
		return err
	}

	*acct = next
	txn.state = Disputed
	return nil
}

// applyResolve releases a disputed amount back to available.
func (e *Engine) applyResolve(acct *Account, rec Record) error {
	txn, err := e.lookup(rec)
	if err != nil {
		return err
	}
	if txn.state != Disputed {
		return &NotDisputedError{Tx: rec.Tx, State: txn.state}
	}

	// Crediting available back can cross the ceiling when both balances
	// sit near it; that is a recoverable rejection like any other.
	next, err := acct.resolve(txn.amount)
	if err != nil {
		return err
	}

	*acct = next
	txn.state = Resolved
	return nil
}

// applyChargeback withdraws a disputed amount for good and locks the
// account. The transaction stays Disputed; with its owner locked it can
// never transition again.
func (e *Engine) applyChargeback(acct *Account, rec Record) error {
	txn, err := e.lookup(rec)
	if err != nil {
		return err
	}
	if txn.state != Disputed {
		return &NotDisputedError{Tx: rec.Tx, State: txn.state}
	}

	next, err := acct.chargeback(txn.amount)
	if err != nil {
		return err
	}

	*acct = next
	return nil
}

// Snapshots derives the final per-client view, ordered by ascending client
// id. It is a pure read and may be called after any prefix of the stream.
func (e *Engine) Snapshots() []Snapshot {
	clients := make([]ClientID, 0, len(e.accounts))
	for client := range e.accounts {
		clients = append(clients, client)
	}
	slices.Sort(clients)

	snaps := make([]Snapshot, 0, len(clients))
	for _, client := range clients {
		snaps = append(snaps, e.accounts[client].snapshot())
	}
	return snaps
}

// GetAccount returns the snapshot for a single client.
func (e *Engine) GetAccount(client ClientID) (Snapshot, bool) {
	acct, ok := e.accounts[client]
	if !ok {
		return Snapshot{}, false
	}
	return acct.snapshot(), true
}
