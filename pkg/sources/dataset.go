package sources

import (
	"encoding/csv"
	"io"
	"strings"

	"golang.org/x/text/cases"

	"github.com/planetary-society/missions/pkg/errors"
)

// foldCaser performs Unicode case folding for case-insensitive lookups.
var foldCaser = cases.Fold()

// Record is one raw row from a source dataset, keyed by column name.
// Missing cells are empty strings.
type Record map[string]string

// Get returns the trimmed value of a column, or "" if absent.
func (r Record) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// Has reports whether the column holds a non-empty value.
func (r Record) Has(column string) bool {
	return r.Get(column) != ""
}

// Dataset is an in-memory table of source records. Row order is preserved
// from the underlying CSV; lookups return the first matching row.
type Dataset struct {
	columns []string
	rows    []Record
}

// NewDataset creates a dataset from pre-built records.
func NewDataset(columns []string, rows []Record) *Dataset {
	return &Dataset{columns: columns, rows: rows}
}

// EmptyDataset returns a dataset with no rows. Sources backed by an empty
// dataset report "no match" for every lookup rather than erroring.
func EmptyDataset() *Dataset {
	return &Dataset{}
}

// ReadCSV parses a dataset from CSV with a header row.
func ReadCSV(r io.Reader, name string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // spreadsheet exports have ragged rows

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return EmptyDataset(), nil
		}
		return nil, errors.WrapParse("csv", name, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Record
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", name, err)
		}
		row := make(Record, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}
		rows = append(rows, row)
	}

	return &Dataset{columns: header, rows: rows}, nil
}

// Empty reports whether the dataset has no rows.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.rows) == 0
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Rows returns the dataset rows in their original order.
func (d *Dataset) Rows() []Record {
	if d == nil {
		return nil
	}
	return d.rows
}

// HasColumn reports whether the dataset's header includes the column.
func (d *Dataset) HasColumn(column string) bool {
	if d == nil {
		return false
	}
	for _, c := range d.columns {
		if c == column {
			return true
		}
	}
	return false
}

// Find returns the first row whose value in any of the identity columns
// matches key, compared case-insensitively after trimming. Columns absent
// from the header are skipped.
func (d *Dataset) Find(key string, identityColumns ...string) (Record, bool) {
	if d.Empty() {
		return nil, false
	}

	want := foldCaser.String(strings.TrimSpace(key))
	if want == "" {
		return nil, false
	}

	for _, row := range d.rows {
		for _, col := range identityColumns {
			if !d.HasColumn(col) {
				continue
			}
			if foldCaser.String(row.Get(col)) == want {
				return row, true
			}
		}
	}
	return nil, false
}

// Column returns every non-empty value in the column, in row order.
func (d *Dataset) Column(column string) []string {
	if d == nil {
		return nil
	}
	var values []string
	for _, row := range d.rows {
		if v := row.Get(column); v != "" {
			values = append(values, v)
		}
	}
	return values
}
