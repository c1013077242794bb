package stream

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/paystream/txproc/ledger"
)

var snapshotHeader = []string{"client", "available", "held", "total", "locked"}

func snapshotRow(s ledger.Snapshot) []string {
	return []string{
		strconv.FormatUint(uint64(s.Client), 10),
		s.Available.String(),
		s.Held.String(),
		s.Total.String(),
		strconv.FormatBool(s.Locked),
	}
}

// WriteCSV renders snapshots as CSV, amounts at exactly four decimal
// places.
func WriteCSV(w io.Writer, snaps []ledger.Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(snapshotHeader); err != nil {
		return err
	}
	for _, s := range snaps {
		if err := cw.Write(snapshotRow(s)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable renders snapshots as a plain aligned table for terminals. The
// numeric columns are right-aligned on their widest cell; the locked column
// is left-aligned.
func WriteTable(w io.Writer, snaps []ledger.Snapshot) error {
	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, snapshotRow(s))
	}

	widths := make([]int, len(snapshotHeader))
	for i, cell := range snapshotHeader {
		widths[i] = runewidth.StringWidth(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow := func(row []string) error {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(row)-1 {
				b.WriteString(cell)
			} else {
				b.WriteString(runewidth.FillLeft(cell, widths[i]))
			}
		}
		_, err := fmt.Fprintln(w, b.String())
		return err
	}

	if err := writeRow(snapshotHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}
