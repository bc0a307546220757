package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"csvsplit/internal/split"
)

const defaultSheet = "Sheet1"

// XLSXWriter writes chunk files as single-sheet Excel workbooks. It
// satisfies split.ChunkWriter and exists for consumers that feed the split
// output straight into spreadsheet tooling.
type XLSXWriter struct {
	Sheet string
}

// NewXLSXWriter creates an XLSX chunk writer targeting the default sheet.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{Sheet: defaultSheet}
}

// Ext returns the file extension this writer produces.
func (w *XLSXWriter) Ext() string { return ".xlsx" }

// WriteChunk writes header and records as consecutive sheet rows and saves
// the workbook at path, replacing any previous file there.
func (w *XLSXWriter) WriteChunk(path string, header []string, records [][]string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, split.NewWriteError(path, fmt.Errorf("failed to create directory: %w", err))
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.setRow(f, 1, header); err != nil {
		return 0, split.NewWriteError(path, err)
	}
	for i, record := range records {
		if err := w.setRow(f, i+2, record); err != nil {
			return 0, split.NewWriteError(path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return 0, split.NewWriteError(path, err)
	}

	slog.Debug("wrote xlsx file",
		slog.String("path", path),
		slog.Int("rows", len(records)))
	return len(records), nil
}

func (w *XLSXWriter) setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to compute cell for row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(w.Sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to set sheet row %d: %w", rowNum, err)
	}
	return nil
}
