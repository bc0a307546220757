package dataset

import (
	"fmt"
	"strings"
)

// Missing is the sentinel stored for absent or empty values. Rows whose
// grouping-column value is missing are grouped under this token instead of
// being dropped.
const Missing = "NA"

// Row maps a column name to its value for one record.
type Row map[string]string

// Dataset is an in-memory table: an ordered column set and an ordered
// sequence of rows. Every row carries a value (possibly Missing) for every
// declared column. A Dataset is built once by ingestion and not mutated
// during a split.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// New creates a dataset with the given column order and no rows.
func New(columns []string) *Dataset {
	return &Dataset{Columns: columns}
}

// HasColumn reports whether name is one of the declared columns.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ColumnAt resolves a 1-based column index to its name.
func (d *Dataset) ColumnAt(index int) (string, error) {
	if index < 1 || index > len(d.Columns) {
		return "", fmt.Errorf("column index %d is out of range: the dataset has %d columns", index, len(d.Columns))
	}
	return d.Columns[index-1], nil
}

// Append adds a row built from values in column order. Missing trailing
// values and empty fields are normalized to the Missing sentinel; extra
// values beyond the declared columns are discarded.
func (d *Dataset) Append(values []string) {
	row := make(Row, len(d.Columns))
	for i, col := range d.Columns {
		v := ""
		if i < len(values) {
			v = strings.TrimSpace(values[i])
		}
		if v == "" {
			v = Missing
		}
		row[col] = v
	}
	d.Rows = append(d.Rows, row)
}

// Values returns the row's values in the dataset's column order.
func (d *Dataset) Values(row Row) []string {
	out := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		out[i] = row[col]
	}
	return out
}

// Records renders rows to [][]string in column order, the shape the CSV and
// XLSX writers consume.
func (d *Dataset) Records(rows []Row) [][]string {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = d.Values(row)
	}
	return records
}

// Dedupe removes exact-duplicate rows, keeping the first occurrence and
// preserving order.
func (d *Dataset) Dedupe() {
	seen := make(map[string]struct{}, len(d.Rows))
	kept := d.Rows[:0]
	for _, row := range d.Rows {
		key := strings.Join(d.Values(row), "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	d.Rows = kept
}
