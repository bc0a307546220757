package split

import (
	"csvsplit/internal/dataset"
)

// Chunk is one bounded slice of a group, destined for one output file.
// Index is 1-based within the group.
type Chunk struct {
	Key   string
	Index int
	Rows  []dataset.Row
}

// PlanChunks slices rows into contiguous, order-preserving chunks of at most
// maxRows each. The last chunk may be shorter. Empty input plans zero chunks
// so no empty files are emitted.
func PlanChunks(key string, rows []dataset.Row, maxRows int) ([]Chunk, error) {
	if maxRows < 1 {
		return nil, NewInvalidConfigError("chunk size %d is invalid, must be a positive integer", maxRows)
	}

	var chunks []Chunk
	for start := 0; start < len(rows); start += maxRows {
		end := start + maxRows
		if end > len(rows) {
			end = len(rows)
		}
		chunks = append(chunks, Chunk{
			Key:   key,
			Index: len(chunks) + 1,
			Rows:  rows[start:end],
		})
	}
	return chunks, nil
}
