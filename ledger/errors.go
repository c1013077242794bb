package ledger

import "fmt"

// Error types for record rejections.
//
// Rejections come in one severity only: the offending record is discarded,
// engine state is left exactly as it was, and the replay continues with the
// next record. Every rejection implements the RecordError marker so callers
// can tell a skippable record apart from a fatal input failure.

// RecordError marks errors that reject a single record without aborting the
// replay.
type RecordError interface {
	error

	// recordRejected is a marker; rejections carry no behavior beyond
	// their message and fields.
	recordRejected()
}

// MalformedAmountError is returned when an amount literal cannot be turned
// into a Money: not a decimal, negative, or above the balance ceiling.
type MalformedAmountError struct {
	Value  string
	Reason string
}

func (e *MalformedAmountError) Error() string {
	return fmt.Sprintf("malformed amount %q: %s", e.Value, e.Reason)
}

func (*MalformedAmountError) recordRejected() {}

// MissingAmountError is returned when a deposit or withdrawal record
// carries no amount column.
type MissingAmountError struct {
	Kind Kind
}

func (e *MissingAmountError) Error() string {
	return fmt.Sprintf("%s record is missing an amount", e.Kind)
}

func (*MissingAmountError) recordRejected() {}

// OverflowError is returned when an addition would push a balance field
// over the ceiling.
type OverflowError struct {
	Balance Money
	Amount  Money
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("adding %s to balance %s exceeds the balance ceiling", e.Amount, e.Balance)
}

func (*OverflowError) recordRejected() {}

// InsufficientFundsError is returned when a subtraction would drive a
// balance field below zero.
type InsufficientFundsError struct {
	Balance Money
	Amount  Money
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("cannot take %s from balance %s", e.Amount, e.Balance)
}

func (*InsufficientFundsError) recordRejected() {}

// AccountLockedError is returned for any record referencing an account that
// was locked by a chargeback. The lock is permanent for the run.
type AccountLockedError struct {
	Client ClientID
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account %d is locked", e.Client)
}

func (*AccountLockedError) recordRejected() {}

// DuplicateTransactionError is returned when a deposit or withdrawal reuses
// a transaction id that is already in the history.
type DuplicateTransactionError struct {
	Tx TxID
}

func (e *DuplicateTransactionError) Error() string {
	return fmt.Sprintf("transaction %d already exists", e.Tx)
}

func (*DuplicateTransactionError) recordRejected() {}

// UnknownTransactionError is returned when a dispute, resolve or chargeback
// references a transaction id that was never applied.
type UnknownTransactionError struct {
	Tx TxID
}

func (e *UnknownTransactionError) Error() string {
	return fmt.Sprintf("transaction %d does not exist", e.Tx)
}

func (*UnknownTransactionError) recordRejected() {}

// ClientMismatchError is returned when a dispute, resolve or chargeback
// references a transaction that belongs to a different client.
type ClientMismatchError struct {
	Tx     TxID
	Owner  ClientID
	Client ClientID
}

func (e *ClientMismatchError) Error() string {
	return fmt.Sprintf("transaction %d belongs to client %d, not client %d", e.Tx, e.Owner, e.Client)
}

func (*ClientMismatchError) recordRejected() {}

// AlreadyDisputedError is returned when a dispute references a transaction
// that is already under dispute.
type AlreadyDisputedError struct {
	Tx TxID
}

func (e *AlreadyDisputedError) Error() string {
	return fmt.Sprintf("transaction %d is already disputed", e.Tx)
}

func (*AlreadyDisputedError) recordRejected() {}

// NotDisputedError is returned when a resolve or chargeback references a
// transaction that is not currently under dispute.
type NotDisputedError struct {
	Tx    TxID
	State DisputeState
}

func (e *NotDisputedError) Error() string {
	return fmt.Sprintf("transaction %d is %s, not disputed", e.Tx, e.State)
}

func (*NotDisputedError) recordRejected() {}
