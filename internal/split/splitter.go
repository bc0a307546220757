package split

import (
	"context"
	"log/slog"
	"os"

	"csvsplit/internal/dataset"
)

// Splitter drives a full split: partition the dataset by the grouping
// column, plan bounded chunks with deterministic file names, then hand the
// task list to the scheduler.
type Splitter struct {
	ds        *dataset.Dataset
	column    string
	outputDir string
	chunkSize int
	pattern   NamePattern
	ext       string
	writer    ChunkWriter
	logger    *slog.Logger
}

// Options configures one run of a Splitter.
type Options struct {
	Mode    Mode
	Workers int
	RunID   string
}

// NewSplitter wires a splitter. ext is the output file extension including
// the dot (".csv" or ".xlsx").
func NewSplitter(ds *dataset.Dataset, column, outputDir string, chunkSize int, pattern NamePattern, ext string, writer ChunkWriter, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Splitter{
		ds:        ds,
		column:    column,
		outputDir: outputDir,
		chunkSize: chunkSize,
		pattern:   pattern,
		ext:       ext,
		writer:    writer,
		logger:    logger.With(slog.String("component", "splitter")),
	}
}

// Run executes the split. Configuration and partitioning errors return
// before anything is written; an unusable output root is a fatal I/O error.
// Per-chunk write failures do not produce an error here, they are collected
// in the report.
func (s *Splitter) Run(ctx context.Context, opts Options) (*Report, error) {
	groups, err := Partition(s.ds, s.column)
	if err != nil {
		return nil, err
	}

	tasks, err := PlanTasks(groups, s.chunkSize, s.pattern, s.outputDir, s.ext)
	if err != nil {
		return nil, err
	}

	// Probe the output root once up front: if it cannot be created every
	// chunk would fail the same way.
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return nil, NewFatalIOError(s.outputDir, err)
	}

	s.logger.Info("planned split",
		slog.String("column", s.column),
		slog.Int("groups", len(groups)),
		slog.Int("chunks", len(tasks)),
		slog.Int("chunk_size", s.chunkSize))

	sched, err := NewScheduler(s.writer, s.ds.Columns, opts.Mode, opts.Workers, s.logger)
	if err != nil {
		return nil, err
	}

	report := sched.Run(ctx, s.ds, tasks)
	report.RunID = opts.RunID
	return report, nil
}
