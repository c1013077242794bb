package ledger

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestRejectionMessages(t *testing.T) {
	tests := []struct {
		err  RecordError
		want string
	}{
		{&MalformedAmountError{Value: "1.2.3", Reason: "not a decimal literal"}, `malformed amount "1.2.3": not a decimal literal`},
		{&MissingAmountError{Kind: Deposit}, "deposit record is missing an amount"},
		{&OverflowError{Balance: MustParseMoney("9999999999.9999"), Amount: MustParseMoney("1")}, "adding 1.0000 to balance 9999999999.9999 exceeds the balance ceiling"},
		{&InsufficientFundsError{Balance: MustParseMoney("2"), Amount: MustParseMoney("3")}, "cannot take 3.0000 from balance 2.0000"},
		{&AccountLockedError{Client: 7}, "account 7 is locked"},
		{&DuplicateTransactionError{Tx: 12}, "transaction 12 already exists"},
		{&UnknownTransactionError{Tx: 42}, "transaction 42 does not exist"},
		{&ClientMismatchError{Tx: 3, Owner: 1, Client: 2}, "transaction 3 belongs to client 1, not client 2"},
		{&AlreadyDisputedError{Tx: 5}, "transaction 5 is already disputed"},
		{&NotDisputedError{Tx: 5, State: Resolved}, "transaction 5 is resolved, not disputed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestRejectionsAreRecordErrors(t *testing.T) {
	eng := NewEngine()
	err := eng.Apply(ref(Dispute, 1, 1))
	assert.Error(t, err)

	var rejected RecordError
	assert.True(t, errors.As(err, &rejected))
}
