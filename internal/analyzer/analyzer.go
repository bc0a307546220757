package analyzer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"csvsplit/internal/dataset"
)

const topValues = 5

// Analyzer produces a descriptive report over a dataset before splitting:
// shape, per-column value frequencies, estimated chunk counts and missing
// data counts.
type Analyzer struct {
	ds *dataset.Dataset
}

// New creates an analyzer over ds.
func New(ds *dataset.Dataset) *Analyzer {
	return &Analyzer{ds: ds}
}

// ValueCount is one distinct value of a column with its occurrence count.
type ValueCount struct {
	Value string
	Count int
}

// WriteReport renders the full analysis to w.
func (a *Analyzer) WriteReport(w io.Writer, chunkSize int) error {
	a.writeBasicInfo(w)
	a.writeValueCounts(w)
	a.writeChunkEstimates(w, chunkSize)
	a.writeMissingData(w)
	return nil
}

func (a *Analyzer) writeBasicInfo(w io.Writer) {
	fmt.Fprintln(w, "Basic Information:")
	fmt.Fprintln(w, "-------------------")
	fmt.Fprintf(w, "Total Rows: %d\n", len(a.ds.Rows))
	fmt.Fprintf(w, "Total Columns: %d\n", len(a.ds.Columns))

	fmt.Fprintln(w, "\nFirst 5 Rows:")
	fmt.Fprintln(w, strings.Join(a.ds.Columns, "  "))
	for i, row := range a.ds.Rows {
		if i >= 5 {
			break
		}
		fmt.Fprintln(w, strings.Join(a.ds.Values(row), "  "))
	}
}

func (a *Analyzer) writeValueCounts(w io.Writer) {
	fmt.Fprintln(w, "\nValue Counts and Frequencies for Each Column:")
	fmt.Fprintln(w, "---------------------------------------------")
	for _, col := range a.ds.Columns {
		counts := a.ColumnValueCounts(col)
		fmt.Fprintf(w, "\nColumn: %s\n", col)
		fmt.Fprintf(w, "Unique Values: %d\n", len(counts))
		fmt.Fprintln(w, "Top 5 Values:")
		for _, vc := range top(counts) {
			fmt.Fprintf(w, "  %s: %d\n", vc.Value, vc.Count)
		}
	}
}

func (a *Analyzer) writeChunkEstimates(w io.Writer, chunkSize int) {
	fmt.Fprintln(w, "\nEstimated Number of Chunks for Top 5 Values in Each Column:")
	fmt.Fprintln(w, "------------------------------------------------------------")
	if chunkSize < 1 {
		chunkSize = 1
	}
	for _, col := range a.ds.Columns {
		for _, vc := range top(a.ColumnValueCounts(col)) {
			chunks := (vc.Count + chunkSize - 1) / chunkSize
			fmt.Fprintf(w, "Column '%s', Value '%s': %d chunk(s)\n", col, vc.Value, chunks)
		}
	}
}

func (a *Analyzer) writeMissingData(w io.Writer) {
	fmt.Fprintln(w, "\nMissing Data Analysis:")
	fmt.Fprintln(w, "----------------------")
	for _, col := range a.ds.Columns {
		fmt.Fprintf(w, "%s: %d\n", col, a.MissingCount(col))
	}
}

// ColumnValueCounts returns every distinct value of col with its count,
// ordered by descending count and ascending value for ties, so output is
// stable across runs.
func (a *Analyzer) ColumnValueCounts(col string) []ValueCount {
	byValue := make(map[string]int)
	for _, row := range a.ds.Rows {
		byValue[row[col]]++
	}
	counts := make([]ValueCount, 0, len(byValue))
	for v, n := range byValue {
		counts = append(counts, ValueCount{Value: v, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Value < counts[j].Value
	})
	return counts
}

// MissingCount returns how many rows hold the missing sentinel in col.
func (a *Analyzer) MissingCount(col string) int {
	n := 0
	for _, row := range a.ds.Rows {
		if row[col] == dataset.Missing {
			n++
		}
	}
	return n
}

func top(counts []ValueCount) []ValueCount {
	if len(counts) > topValues {
		return counts[:topValues]
	}
	return counts
}
