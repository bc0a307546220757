// Package analyzer renders a descriptive report over a dataset: shape,
// per-column value frequencies, estimated chunk counts at the configured
// chunk size, and missing-data counts.
package analyzer
