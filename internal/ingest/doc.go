// Package ingest reads the sectioned input format into a dataset: it
// validates the header declaration, extracts the semicolon-separated data
// section, normalizes missing values and drops duplicate rows.
package ingest
