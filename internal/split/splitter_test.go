package split

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvsplit/internal/dataset"
)

func TestSplitterRunExampleScenario(t *testing.T) {
	// 5 rows keyed [a b a c b] with one row per file must yield 5 files
	// covering all 5 rows.
	ds := dataset.New([]string{"k", "v"})
	for i, k := range []string{"a", "b", "a", "c", "b"} {
		ds.Append([]string{k, string(rune('0' + i))})
	}

	p, err := NewNamePattern("datafile_{key}_{index}")
	require.NoError(t, err)

	w := newFakeWriter()
	outDir := t.TempDir()
	s := NewSplitter(ds, "k", outDir, 1, p, ".csv", w, nil)

	report, err := s.Run(context.Background(), Options{Mode: ModeSequential, RunID: "test-run"})
	require.NoError(t, err)

	assert.Equal(t, "test-run", report.RunID)
	assert.Len(t, report.Written, 5)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 5, report.RowsWritten())
	assert.Contains(t, w.writes, filepath.Join(outDir, "datafile_a_2.csv"))
	assert.Contains(t, w.writes, filepath.Join(outDir, "datafile_c_1.csv"))
}

func TestSplitterRunColumnNotFound(t *testing.T) {
	ds := dataset.New([]string{"k"})
	ds.Append([]string{"a"})
	p, err := NewNamePattern("{key}_{index}")
	require.NoError(t, err)

	w := newFakeWriter()
	s := NewSplitter(ds, "missing_col", t.TempDir(), 1, p, ".csv", w, nil)

	_, err = s.Run(context.Background(), Options{Mode: ModeSequential})
	require.Error(t, err)
	assert.Equal(t, ErrorKindColumnNotFound, KindOf(err))
	assert.Empty(t, w.writes, "no files written on fatal errors")
}

func TestSplitterRunUnusableOutputRoot(t *testing.T) {
	ds := dataset.New([]string{"k"})
	ds.Append([]string{"a"})
	p, err := NewNamePattern("{key}_{index}")
	require.NoError(t, err)

	// A file where the output directory should be makes MkdirAll fail.
	base := t.TempDir()
	blocker := filepath.Join(base, "occupied")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	w := newFakeWriter()
	s := NewSplitter(ds, "k", filepath.Join(blocker, "out"), 1, p, ".csv", w, nil)

	_, err = s.Run(context.Background(), Options{Mode: ModeSequential})
	require.Error(t, err)
	assert.Equal(t, ErrorKindFatalIO, KindOf(err))
	assert.Empty(t, w.writes)
}
