// Package dataset defines the in-memory table model shared by ingestion,
// analysis and splitting: an ordered column set, mapping-based rows, and the
// sentinel used for missing values.
package dataset
