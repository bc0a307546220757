// Package exporter holds the chunk file writers used by the split engine.
//
// CSVWriter serializes chunks as comma-separated text with a header row,
// optionally prefixed with a UTF-8 BOM for Excel compatibility. XLSXWriter
// produces single-sheet Excel workbooks with the same layout. Both create
// parent directories on demand and fully replace existing files, so a
// repeated run over the same input regenerates identical output.
package exporter
