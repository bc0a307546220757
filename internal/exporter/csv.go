package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"csvsplit/internal/split"
)

// CSVWriter writes chunk files in CSV form: header row first, then the
// data rows. It satisfies split.ChunkWriter.
type CSVWriter struct {
	// BOM prefixes files with a UTF-8 BOM for Excel compatibility.
	BOM bool
}

// NewCSVWriter creates a CSV chunk writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Ext returns the file extension this writer produces.
func (w *CSVWriter) Ext() string { return ".csv" }

// WriteChunk writes one chunk file at path, creating parent directories as
// needed. The file is truncated first, so re-running the same chunk
// produces a byte-identical file. A concurrent worker creating the same
// parent directory is not an error.
func (w *CSVWriter) WriteChunk(path string, header []string, records [][]string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, split.NewWriteError(path, fmt.Errorf("failed to create directory: %w", err))
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, split.NewWriteError(path, fmt.Errorf("failed to open file: %w", err))
	}

	if w.BOM {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			file.Close()
			return 0, split.NewWriteError(path, fmt.Errorf("failed to write BOM: %w", err))
		}
	}

	cw := csv.NewWriter(file)
	if err := cw.Write(header); err != nil {
		file.Close()
		return 0, split.NewWriteError(path, fmt.Errorf("failed to write header: %w", err))
	}
	for i, record := range records {
		if err := cw.Write(record); err != nil {
			file.Close()
			return 0, split.NewWriteError(path, fmt.Errorf("failed to write record %d: %w", i, err))
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		file.Close()
		return 0, split.NewWriteError(path, err)
	}
	if err := file.Close(); err != nil {
		return 0, split.NewWriteError(path, err)
	}

	slog.Debug("wrote csv file",
		slog.String("path", path),
		slog.Int("rows", len(records)))
	return len(records), nil
}
