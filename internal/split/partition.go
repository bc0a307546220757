package split

import (
	"csvsplit/internal/dataset"
)

// Group is one partition of the dataset: the distinct grouping-column value
// and the rows carrying it, in source order.
type Group struct {
	Key  string
	Rows []dataset.Row
}

// Partition splits ds into groups by the distinct values of column. Rows
// whose value is the missing sentinel group under the sentinel itself, so no
// row is dropped. Groups come back in first-seen order and each group's rows
// keep their source order.
func Partition(ds *dataset.Dataset, column string) ([]Group, error) {
	if !ds.HasColumn(column) {
		return nil, NewColumnNotFoundError(column, ds.Columns)
	}

	index := make(map[string]int)
	var groups []Group
	for _, row := range ds.Rows {
		key := row[column]
		if key == "" {
			key = dataset.Missing
		}
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups, nil
}
