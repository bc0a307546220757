package split

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"csvsplit/internal/dataset"
)

// RecordSource renders a chunk's rows into serializable records. The
// dataset type satisfies it.
type RecordSource interface {
	Records(rows []dataset.Row) [][]string
}

// Mode selects how chunk writes are scheduled.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeConcurrent Mode = "concurrent"
)

// ChunkWriter serializes one chunk to one file. Implementations must either
// write the file completely or return an error; a nil error means the file
// at path is valid and holds rows data rows.
type ChunkWriter interface {
	WriteChunk(path string, header []string, records [][]string) (int, error)
}

// WrittenFileInfo reports one successfully written output file.
type WrittenFileInfo struct {
	Path string
	Rows int
}

// FailedChunk pairs a chunk identity with the error that sank it.
type FailedChunk struct {
	ChunkID string
	Path    string
	Err     error
}

// Report is the aggregate outcome of a run. Written + Failed always covers
// every submitted task exactly once; individual failures never abort the
// run, they land here.
type Report struct {
	RunID    string
	Written  []WrittenFileInfo
	Failed   []FailedChunk
	Duration time.Duration
}

// Total returns the number of chunks attempted.
func (r *Report) Total() int {
	return len(r.Written) + len(r.Failed)
}

// RowsWritten sums the data rows across all written files.
func (r *Report) RowsWritten() int {
	n := 0
	for _, w := range r.Written {
		n += w.Rows
	}
	return n
}

// Scheduler drains a task list through a ChunkWriter, sequentially or with
// a bounded worker pool.
type Scheduler struct {
	writer  ChunkWriter
	header  []string
	mode    Mode
	workers int
	logger  *slog.Logger
}

// NewScheduler validates the scheduling options. workers == 0 defaults to
// the host's available parallelism; negative values are rejected. An
// unknown mode is rejected before any write is attempted.
func NewScheduler(writer ChunkWriter, header []string, mode Mode, workers int, logger *slog.Logger) (*Scheduler, error) {
	switch mode {
	case ModeSequential, ModeConcurrent:
	default:
		return nil, NewInvalidConfigError("unknown scheduling mode %q", mode)
	}
	if workers < 0 {
		return nil, NewInvalidConfigError("worker count %d is invalid, must be zero or positive", workers)
	}
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		writer:  writer,
		header:  header,
		mode:    mode,
		workers: workers,
		logger:  logger.With(slog.String("component", "scheduler")),
	}, nil
}

// Run attempts every task exactly once and aggregates the outcomes. When
// ctx is cancelled no new writes start; writes already in flight finish and
// their files remain valid. Tasks never attempted because of cancellation
// are reported as failed with the context error.
func (s *Scheduler) Run(ctx context.Context, ds RecordSource, tasks []Task) *Report {
	start := time.Now()
	report := &Report{}

	s.logger.Info("starting chunk writes",
		slog.String("mode", string(s.mode)),
		slog.Int("tasks", len(tasks)),
		slog.Int("workers", s.workers))

	if s.mode == ModeSequential {
		s.runSequential(ctx, ds, tasks, report)
	} else {
		s.runConcurrent(ctx, ds, tasks, report)
	}

	report.Duration = time.Since(start)
	s.logger.Info("chunk writes finished",
		slog.Int("written", len(report.Written)),
		slog.Int("failed", len(report.Failed)),
		slog.Duration("duration", report.Duration))
	return report
}

func (s *Scheduler) runSequential(ctx context.Context, ds RecordSource, tasks []Task, report *Report) {
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			s.record(report, task, writeOutcome{err: err})
			continue
		}
		s.record(report, task, s.writeOne(task, ds))
	}
}

func (s *Scheduler) runConcurrent(ctx context.Context, ds RecordSource, tasks []Task, report *Report) {
	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(s.workers)

	record := func(task Task, outcome writeOutcome) {
		mu.Lock()
		s.record(report, task, outcome)
		mu.Unlock()
	}

	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			record(task, writeOutcome{err: err})
			continue
		}
		task := task
		g.Go(func() error {
			// The wait for a worker slot can outlive a cancellation; do
			// not start the write once the run is cancelled.
			if err := ctx.Err(); err != nil {
				record(task, writeOutcome{err: err})
				return nil
			}
			record(task, s.writeOne(task, ds))
			return nil
		})
	}
	g.Wait()
}

type writeOutcome struct {
	rows int
	err  error
}

func (s *Scheduler) writeOne(task Task, ds RecordSource) writeOutcome {
	rows, err := s.writer.WriteChunk(task.Path, s.header, ds.Records(task.Chunk.Rows))
	if err != nil {
		s.logger.Error("failed to write chunk",
			slog.String("chunk", task.Chunk.ChunkID()),
			slog.String("path", task.Path),
			slog.String("error", err.Error()))
		return writeOutcome{err: err}
	}
	s.logger.Debug("wrote chunk",
		slog.String("chunk", task.Chunk.ChunkID()),
		slog.String("path", task.Path),
		slog.Int("rows", rows))
	return writeOutcome{rows: rows}
}

func (s *Scheduler) record(report *Report, task Task, outcome writeOutcome) {
	if outcome.err != nil {
		report.Failed = append(report.Failed, FailedChunk{
			ChunkID: task.Chunk.ChunkID(),
			Path:    task.Path,
			Err:     outcome.err,
		})
		return
	}
	report.Written = append(report.Written, WrittenFileInfo{Path: task.Path, Rows: outcome.rows})
}
