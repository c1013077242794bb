package stream

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/paystream/txproc/ledger"
)

func sampleSnapshots() []ledger.Snapshot {
	return []ledger.Snapshot{
		{
			Client:    1,
			Available: ledger.MustParseMoney("1.5"),
			Held:      ledger.MustParseMoney("0"),
			Total:     ledger.MustParseMoney("1.5"),
		},
		{
			Client:    2,
			Available: ledger.MustParseMoney("0"),
			Held:      ledger.MustParseMoney("200"),
			Total:     ledger.MustParseMoney("200"),
			Locked:    true,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteCSV(&buf, sampleSnapshots()))

	want := `client,available,held,total,locked
1,1.5000,0.0000,1.5000,false
2,0.0000,200.0000,200.0000,true
`
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteTable(&buf, sampleSnapshots()))

	want := `client  available      held     total  locked
     1     1.5000    0.0000    1.5000  false
     2     0.0000  200.0000  200.0000  true
`
	assert.Equal(t, want, buf.String())
}
