package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/paystream/txproc/ledger"
)

func TestReplayStream(t *testing.T) {
	input := `type, client, tx, amount
deposit, 1, 1, 5.0
withdrawal, 1, 2, 3.0
withdrawal, 1, 3, 3.0
deposit, 2, 4, not-a-number
dispute, 2, 99,
`

	var stderr bytes.Buffer
	eng := ledger.NewEngine()

	stats, err := replayStream(eng, strings.NewReader(input), true, &stderr)
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.applied)
	assert.Equal(t, 3, stats.rejected)

	snap, ok := eng.GetAccount(1)
	assert.True(t, ok)
	assert.Equal(t, "2.0000", snap.Available.String())

	// Verbose mode narrates rejections with their row numbers.
	log := stderr.String()
	assert.True(t, strings.Contains(log, "row 4:"), "missing row 4 rejection in:\n%s", log)
	assert.True(t, strings.Contains(log, "row 5:"), "missing row 5 rejection in:\n%s", log)
	assert.True(t, strings.Contains(log, "row 6:"), "missing row 6 rejection in:\n%s", log)
}

func TestReplayStreamStructuralErrorAborts(t *testing.T) {
	input := `type, client, tx, amount
deposit, 1, 1, 5.0
teleport, 1, 2, 3.0
deposit, 1, 3, 1.0
`

	eng := ledger.NewEngine()
	stats, err := replayStream(eng, strings.NewReader(input), false, &bytes.Buffer{})
	assert.Error(t, err)
	assert.Equal(t, 1, stats.applied)

	// Nothing after the structural failure was applied.
	snap, ok := eng.GetAccount(1)
	assert.True(t, ok)
	assert.Equal(t, "5.0000", snap.Available.String())
}

func TestReplayStreamQuietByDefault(t *testing.T) {
	input := `type, client, tx, amount
withdrawal, 1, 1, 3.0
`

	var stderr bytes.Buffer
	eng := ledger.NewEngine()

	stats, err := replayStream(eng, strings.NewReader(input), false, &stderr)
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.rejected)
	assert.Equal(t, 0, stderr.Len())
}

func TestRenderSnapshots(t *testing.T) {
	snaps := []ledger.Snapshot{
		{
			Client:    1,
			Available: ledger.MustParseMoney("4"),
			Total:     ledger.MustParseMoney("4"),
		},
	}

	var csvOut bytes.Buffer
	assert.NoError(t, renderSnapshots(&csvOut, snaps, "csv"))
	assert.Equal(t, "client,available,held,total,locked\n1,4.0000,0.0000,4.0000,false\n", csvOut.String())

	var tableOut bytes.Buffer
	assert.NoError(t, renderSnapshots(&tableOut, snaps, "table"))
	assert.True(t, strings.HasPrefix(tableOut.String(), "client  available"))
}
