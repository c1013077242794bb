package ledger

import "fmt"

// ClientID identifies a client account.
type ClientID uint16

// TxID identifies a single deposit or withdrawal.
type TxID uint32

// Kind enumerates the five record kinds. The set is closed; the engine
// switches over it exhaustively rather than dispatching dynamically.
type Kind int

const (
	Deposit Kind = iota
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

// String returns the input-column spelling of the kind.
func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// ParseKind maps an input column value to a Kind. An unrecognized kind is a
// structural failure, not a record rejection: the row cannot even be
// decoded into a Record.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "deposit":
		return Deposit, nil
	case "withdrawal":
		return Withdrawal, nil
	case "dispute":
		return Dispute, nil
	case "resolve":
		return Resolve, nil
	case "chargeback":
		return Chargeback, nil
	default:
		return 0, fmt.Errorf("unknown record kind %q", s)
	}
}

// Record is one incoming transaction row, already decoded. Amount is nil
// for dispute, resolve and chargeback records: those reference the original
// transaction's amount instead of carrying their own.
type Record struct {
	Kind   Kind
	Client ClientID
	Tx     TxID
	Amount *Money
}

// DisputeState tracks where a transaction is in its dispute cycle.
//
// Legal transitions form the chain Clean -> Disputed -> Resolved ->
// Disputed -> ... so a transaction may be disputed again once a prior
// dispute has been resolved. A chargeback leaves the transaction Disputed
// and locks the owning account, which ends the cycle for good.
type DisputeState int

const (
	Clean DisputeState = iota
	Disputed
	Resolved
)

func (s DisputeState) String() string {
	switch s {
	case Clean:
		return "clean"
	case Disputed:
		return "disputed"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// transaction is a disputable history entry. Entries are created on the
// first successful deposit or withdrawal and retained for the whole run;
// a resolved transaction may be disputed again later.
type transaction struct {
	client ClientID
	kind   Kind
	amount Money
	state  DisputeState
}
