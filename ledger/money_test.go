package ledger

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Money
		wantErr bool
	}{
		{name: "integer", input: "1", want: NewMoney(10_000)},
		{name: "four decimals", input: "1.5000", want: NewMoney(15_000)},
		{name: "fewer decimals", input: "2.5", want: NewMoney(25_000)},
		{name: "zero", input: "0", want: NewMoney(0)},
		{name: "negative zero", input: "-0.0", want: NewMoney(0)},
		{name: "smallest unit", input: "0.0001", want: NewMoney(1)},
		{name: "rounds down below half", input: "0.00004", want: NewMoney(0)},
		{name: "rounds half away from zero", input: "0.00005", want: NewMoney(1)},
		{name: "exactly the ceiling", input: "10000000000.0000", want: MaxMoney},
		{name: "just above the ceiling", input: "10000000000.0001", wantErr: true},
		{name: "rounds up to the ceiling", input: "9999999999.99995", want: MaxMoney},
		{name: "negative", input: "-1.0", wantErr: true},
		{name: "negative below half unit", input: "-0.00004", wantErr: true},
		{name: "not a number", input: "12.3.4", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				var malformed *MalformedAmountError
				assert.True(t, errors.As(err, &malformed), "want *MalformedAmountError, got %T", err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestMoneyAdd(t *testing.T) {
	sum, err := NewMoney(3).Add(NewMoney(5))
	assert.NoError(t, err)
	assert.True(t, sum.Equal(NewMoney(8)))

	sum, err = NewMoney(10).Add(NewMoney(0))
	assert.NoError(t, err)
	assert.True(t, sum.Equal(NewMoney(10)))

	// Exact arithmetic right below the ceiling.
	sum, err = NewMoney(maxUnits - 1).Add(NewMoney(1))
	assert.NoError(t, err)
	assert.True(t, sum.Equal(MaxMoney))

	_, err = MaxMoney.Add(NewMoney(1))
	assert.Error(t, err)
	var overflow *OverflowError
	assert.True(t, errors.As(err, &overflow))
}

func TestMoneySub(t *testing.T) {
	diff, err := NewMoney(8).Sub(NewMoney(5))
	assert.NoError(t, err)
	assert.True(t, diff.Equal(NewMoney(3)))

	diff, err = NewMoney(0).Sub(NewMoney(0))
	assert.NoError(t, err)
	assert.True(t, diff.IsZero())

	diff, err = MaxMoney.Sub(MaxMoney)
	assert.NoError(t, err)
	assert.True(t, diff.IsZero())

	_, err = NewMoney(3).Sub(NewMoney(4))
	assert.Error(t, err)
	var insufficient *InsufficientFundsError
	assert.True(t, errors.As(err, &insufficient))
}

func TestMoneyOrdering(t *testing.T) {
	assert.True(t, NewMoney(8).Less(NewMoney(10)))
	assert.True(t, NewMoney(8).Less(MaxMoney))
	assert.False(t, NewMoney(10).Less(NewMoney(0)))
	assert.False(t, NewMoney(10).Less(NewMoney(10)))
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "0", want: "0.0000"},
		{input: "1.5", want: "1.5000"},
		{input: "2", want: "2.0000"},
		{input: "0.0001", want: "0.0001"},
		{input: "10000000000", want: "10000000000.0000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MustParseMoney(tt.input).String())
	}
}

func TestNewMoneyPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { NewMoney(-1) })
	assert.Panics(t, func() { NewMoney(maxUnits + 1) })
}
