package split

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvsplit/internal/dataset"
)

func TestNewNamePattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{name: "both placeholders", pattern: "datafile_{key}_{index}", wantErr: false},
		{name: "placeholders reordered", pattern: "{index}-{key}", wantErr: false},
		{name: "missing index", pattern: "datafile_{key}", wantErr: true},
		{name: "missing key", pattern: "datafile_{index}", wantErr: true},
		{name: "no placeholders", pattern: "datafile", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNamePattern(tt.pattern)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ErrorKindInvalidConfig, KindOf(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNamePatternRender(t *testing.T) {
	p, err := NewNamePattern("out_{key}_{index}")
	require.NoError(t, err)

	assert.Equal(t, "out_berlin_1", p.Render("berlin", 1))
	assert.Equal(t, "out_a_b_12", p.Render("a/b", 12))
	assert.Equal(t, "out_NA_2", p.Render("NA", 2))
	assert.Equal(t, "out___3", p.Render("..", 3))
}

func TestPlanTasksPathsAreUnique(t *testing.T) {
	ds := dataset.New([]string{"k"})
	for _, k := range []string{"a", "b", "a", "c", "b"} {
		ds.Append([]string{k})
	}
	groups, err := Partition(ds, "k")
	require.NoError(t, err)

	p, err := NewNamePattern("datafile_{key}_{index}")
	require.NoError(t, err)

	tasks, err := PlanTasks(groups, 1, p, "out", ".csv")
	require.NoError(t, err)
	require.Len(t, tasks, 5)

	paths := make(map[string]struct{})
	totalRows := 0
	for _, task := range tasks {
		paths[task.Path] = struct{}{}
		totalRows += len(task.Chunk.Rows)
	}
	assert.Len(t, paths, 5, "all output paths pairwise distinct")
	assert.Equal(t, 5, totalRows, "all input rows covered")
	assert.Contains(t, paths, filepath.Join("out", "datafile_a_1.csv"))
	assert.Contains(t, paths, filepath.Join("out", "datafile_a_2.csv"))
	assert.Contains(t, paths, filepath.Join("out", "datafile_c_1.csv"))
}

func TestPlanTasksDetectsSanitizationCollision(t *testing.T) {
	// "a/b" and "a_b" sanitize to the same file name.
	ds := dataset.New([]string{"k"})
	ds.Append([]string{"a/b"})
	ds.Append([]string{"a_b"})
	groups, err := Partition(ds, "k")
	require.NoError(t, err)

	p, err := NewNamePattern("{key}_{index}")
	require.NoError(t, err)

	_, err = PlanTasks(groups, 10, p, "out", ".csv")
	require.Error(t, err)
	assert.Equal(t, ErrorKindInvalidConfig, KindOf(err))
	assert.Contains(t, err.Error(), "collides")
}

func TestPlanTasksPropagatesChunkSizeError(t *testing.T) {
	ds := dataset.New([]string{"k"})
	ds.Append([]string{"a"})
	groups, err := Partition(ds, "k")
	require.NoError(t, err)

	p, err := NewNamePattern("{key}_{index}")
	require.NoError(t, err)

	_, err = PlanTasks(groups, 0, p, "out", ".csv")
	require.Error(t, err)
	assert.Equal(t, ErrorKindInvalidConfig, KindOf(err))
}
