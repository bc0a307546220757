package ingest

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"csvsplit/internal/dataset"
)

const (
	headerEndMarker = "</HEADER>"
	dataStartMarker = "<BOD>"
	fieldDelimiter  = ";"
	minHeaderLines  = 4
	columnCountLine = 2
	columnNamesLine = 3
)

// Reader loads a sectioned data file: a header section terminated by
// </HEADER> that declares the column count and names, then a data section
// opened by <BOD> holding semicolon-separated records.
type Reader struct {
	path   string
	logger *slog.Logger
}

// NewReader creates a reader for the file at path.
func NewReader(path string, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		path:   path,
		logger: logger.With(slog.String("component", "ingest")),
	}
}

// Read parses the file into a normalized dataset: missing and empty fields
// become the missing sentinel and exact-duplicate rows are dropped.
func (r *Reader) Read() (*dataset.Dataset, error) {
	columns, err := r.readColumns()
	if err != nil {
		return nil, err
	}

	ds := dataset.New(columns)
	if err := r.readData(ds); err != nil {
		return nil, err
	}

	before := len(ds.Rows)
	ds.Dedupe()
	r.logger.Info("loaded dataset",
		slog.String("file", r.path),
		slog.Int("columns", len(ds.Columns)),
		slog.Int("rows", len(ds.Rows)),
		slog.Int("duplicates_dropped", before-len(ds.Rows)))
	return ds, nil
}

// readColumns parses the header section and cross-checks the declared
// column count against the declared names.
func (r *Reader) readColumns() ([]string, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var header []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == headerEndMarker {
			break
		}
		header = append(header, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", r.path, err)
	}

	if len(header) < minHeaderLines {
		return nil, fmt.Errorf("incomplete header format in %s: expected at least %d lines, got %d", r.path, minHeaderLines, len(header))
	}

	count, err := headerValueInt(header[columnCountLine])
	if err != nil {
		return nil, fmt.Errorf("invalid column count declaration in %s: %w", r.path, err)
	}

	names, err := headerValueList(header[columnNamesLine])
	if err != nil {
		return nil, fmt.Errorf("invalid column names declaration in %s: %w", r.path, err)
	}

	if len(names) != count {
		return nil, fmt.Errorf("number of columns does not match the header declaration: declared %d, named %d", count, len(names))
	}
	return names, nil
}

// readData appends every record in the data section to ds. Blank lines and
// section markers are skipped.
func (r *Reader) readData(ds *dataset.Dataset) error {
	file, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	inData := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == dataStartMarker:
			inData = true
		case !inData:
		case line == "" || strings.HasPrefix(line, "<"):
		default:
			ds.Append(strings.Split(line, fieldDelimiter))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read data from %s: %w", r.path, err)
	}
	return nil
}

// headerValueInt parses a "key = value" header line into an integer.
func headerValueInt(line string) (int, error) {
	_, value, found := strings.Cut(line, "=")
	if !found {
		return 0, fmt.Errorf("missing '=' in header line %q", line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("not an integer in header line %q: %w", line, err)
	}
	return n, nil
}

// headerValueList parses a "key = [a,b,c]" header line into its items.
func headerValueList(line string) ([]string, error) {
	_, value, found := strings.Cut(line, "=")
	if !found {
		return nil, fmt.Errorf("missing '=' in header line %q", line)
	}
	value = strings.Trim(strings.TrimSpace(value), "[]")
	if value == "" {
		return nil, fmt.Errorf("empty column list in header line %q", line)
	}
	parts := strings.Split(value, ",")
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = strings.TrimSpace(p)
	}
	return names, nil
}
