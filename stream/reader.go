// Package stream adapts the ledger engine to the delimited-text world:
// decoding transaction rows into records on the way in and rendering
// account snapshots on the way out. The engine itself never sees CSV.
package stream

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paystream/txproc/ledger"
)

// RowError ties a decode failure to its 1-based row in the input. It wraps
// the underlying cause: rows failing with a ledger.RecordError are skipped
// by the replay loop, anything else aborts the run.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Recoverable reports whether err rejects a single record rather than the
// whole input.
func Recoverable(err error) bool {
	var rejected ledger.RecordError
	return errors.As(err, &rejected)
}

// Reader decodes transaction records from CSV input. The expected shape is
//
//	type, client, tx, amount
//	deposit, 1, 1, 1.5
//	dispute, 1, 1,
//
// with a mandatory header row, whitespace-tolerant fields, and an amount
// column that may be empty or absent on dispute, resolve and chargeback
// rows.
type Reader struct {
	csv *csv.Reader
	row int
}

// NewReader wraps r for record decoding.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Dispute rows are written with three or four columns depending on the
	// producer; don't pin the field count.
	cr.FieldsPerRecord = -1
	return &Reader{csv: cr}
}

// Row returns the 1-based number of the most recently read row, header
// included.
func (r *Reader) Row() int {
	return r.row
}

// Next returns the next decoded record, or io.EOF once the input is
// exhausted. Decode failures are wrapped in *RowError; use Recoverable to
// tell record rejections from structural ones.
func (r *Reader) Next() (ledger.Record, error) {
	for {
		row, err := r.csv.Read()
		if err == io.EOF {
			return ledger.Record{}, io.EOF
		}
		if err != nil {
			return ledger.Record{}, err
		}
		r.row++

		if r.row == 1 {
			// Header row.
			continue
		}

		rec, err := decodeRow(row)
		if err != nil {
			return ledger.Record{}, &RowError{Row: r.row, Err: err}
		}
		return rec, nil
	}
}

func decodeRow(row []string) (ledger.Record, error) {
	if len(row) < 3 {
		return ledger.Record{}, fmt.Errorf("expected at least 3 columns, got %d", len(row))
	}

	kind, err := ledger.ParseKind(strings.TrimSpace(row[0]))
	if err != nil {
		return ledger.Record{}, err
	}

	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return ledger.Record{}, fmt.Errorf("invalid client id %q", row[1])
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return ledger.Record{}, fmt.Errorf("invalid transaction id %q", row[2])
	}

	rec := ledger.Record{
		Kind:   kind,
		Client: ledger.ClientID(client),
		Tx:     ledger.TxID(tx),
	}

	if len(row) > 3 {
		if raw := strings.TrimSpace(row[3]); raw != "" {
			amount, err := ledger.ParseMoney(raw)
			if err != nil {
				// Malformed amounts reject the record, not the run.
				return ledger.Record{}, err
			}
			rec.Amount = &amount
		}
	}

	return rec, nil
}
