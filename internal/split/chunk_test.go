package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvsplit/internal/dataset"
)

func makeRows(n int) []dataset.Row {
	rows := make([]dataset.Row, n)
	for i := range rows {
		rows[i] = dataset.Row{"i": string(rune('a' + i))}
	}
	return rows
}

func TestPlanChunksReconstruction(t *testing.T) {
	tests := []struct {
		name       string
		rows       int
		maxRows    int
		wantChunks int
	}{
		{name: "exact multiple", rows: 6, maxRows: 3, wantChunks: 2},
		{name: "short last chunk", rows: 7, maxRows: 3, wantChunks: 3},
		{name: "single oversized limit", rows: 4, maxRows: 10, wantChunks: 1},
		{name: "one row per chunk", rows: 5, maxRows: 1, wantChunks: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := makeRows(tt.rows)
			chunks, err := PlanChunks("g", rows, tt.maxRows)
			require.NoError(t, err)
			require.Len(t, chunks, tt.wantChunks)

			var rebuilt []dataset.Row
			for i, c := range chunks {
				assert.Equal(t, "g", c.Key)
				assert.Equal(t, i+1, c.Index, "chunk index is 1-based and sequential")
				assert.NotEmpty(t, c.Rows, "no empty chunks")
				assert.LessOrEqual(t, len(c.Rows), tt.maxRows)
				rebuilt = append(rebuilt, c.Rows...)
			}
			assert.Equal(t, rows, rebuilt, "concatenated chunks reproduce the group")
		})
	}
}

func TestPlanChunksEmptyRows(t *testing.T) {
	chunks, err := PlanChunks("g", nil, 3)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestPlanChunksInvalidMaxRows(t *testing.T) {
	for _, maxRows := range []int{0, -1} {
		_, err := PlanChunks("g", makeRows(3), maxRows)
		require.Error(t, err)
		assert.Equal(t, ErrorKindInvalidConfig, KindOf(err))
	}
}
