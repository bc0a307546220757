package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"csvsplit/internal/analyzer"
	"csvsplit/internal/config"
	"csvsplit/internal/dataset"
	"csvsplit/internal/exporter"
	"csvsplit/internal/infrastructure"
	"csvsplit/internal/ingest"
	"csvsplit/internal/split"
)

const defaultInputFile = "datafile.csv"

func main() {
	os.Exit(run())
}

func run() int {
	file := flag.String("f", defaultInputFile, "path to the input file to split")
	output := flag.String("o", "split_output", "output folder for the split files")
	chunkSize := flag.Int("c", 300, "number of rows per split file")
	namePattern := flag.String("n", "datafile_{key}_{index}", "pattern for naming output files, {key} is the column value and {index} the file index")
	verbose := flag.Bool("v", false, "enable verbose output")
	logFile := flag.String("l", "process.log", "path to the log file")
	analyze := flag.Bool("a", false, "perform data analysis before file splitting")
	threading := flag.Bool("t", false, "enable multi-threaded processing")
	workers := flag.Int("workers", 0, "number of concurrent writers, 0 means all available CPUs")
	format := flag.String("format", "csv", "output file format: csv or xlsx")
	bom := flag.Bool("bom", false, "prefix CSV output files with a UTF-8 BOM for Excel compatibility")
	configFile := flag.String("config", "", "optional YAML configuration file")
	yes := flag.Bool("y", false, "assume yes on confirmation prompts")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: csvsplit [flags] <column>")
		fmt.Fprintln(os.Stderr, "<column> is the grouping column, as a 1-based index or a column name.")
		flag.PrintDefaults()
		return 2
	}
	columnArg := flag.Arg(0)

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	// Explicitly set flags win over environment and file settings.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			cfg.Input.File = *file
		case "o":
			cfg.Split.OutputDir = *output
		case "c":
			cfg.Split.ChunkSize = *chunkSize
		case "n":
			cfg.Split.NamePattern = *namePattern
		case "l":
			cfg.Logging.FilePath = *logFile
		case "a":
			cfg.Analyze = *analyze
		case "t":
			if *threading {
				cfg.Split.Mode = string(split.ModeConcurrent)
			}
		case "workers":
			cfg.Split.Workers = *workers
		case "format":
			cfg.Split.Format = *format
		case "bom":
			cfg.Split.BOM = *bom
		}
	})
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	applyColumnArg(cfg, columnArg)

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		return 1
	}
	defer infrastructure.CloseLogFile()

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	pattern, err := split.NewNamePattern(cfg.Split.NamePattern)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	runID := infrastructure.GenerateRunID()
	ctx, stop := signal.NotifyContext(infrastructure.WithRunID(context.Background(), runID), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger = infrastructure.LoggerWithContext(ctx)

	if cfg.Input.File == defaultInputFile && !*yes {
		if !confirm(fmt.Sprintf("No file specified. The default file %q will be used. Continue? (Y/n): ", defaultInputFile)) {
			fmt.Println("Operation cancelled.")
			return 0
		}
	}

	ds, err := ingest.NewReader(cfg.Input.File, logger).Read()
	if err != nil {
		logger.Error("failed to read input file", "error", err, "file", cfg.Input.File)
		return 1
	}

	column, err := resolveColumn(ds, cfg)
	if err != nil {
		logger.Error("invalid grouping column", "error", err)
		return 1
	}

	if cfg.Analyze {
		if err := analyzer.New(ds).WriteReport(os.Stdout, cfg.Split.ChunkSize); err != nil {
			logger.Error("data analysis failed", "error", err)
			return 1
		}
		if !*yes && !confirm("Proceed with file splitting? (Y/n): ") {
			fmt.Println("Operation cancelled.")
			return 0
		}
	}

	var writer interface {
		split.ChunkWriter
		Ext() string
	}
	if cfg.Split.Format == "xlsx" {
		writer = exporter.NewXLSXWriter()
	} else {
		cw := exporter.NewCSVWriter()
		cw.BOM = cfg.Split.BOM
		writer = cw
	}

	splitter := split.NewSplitter(ds, column, cfg.Split.OutputDir, cfg.Split.ChunkSize, pattern, writer.Ext(), writer, logger)
	report, err := splitter.Run(ctx, split.Options{
		Mode:    split.Mode(cfg.Split.Mode),
		Workers: cfg.Split.Workers,
		RunID:   runID,
	})
	if err != nil {
		logger.Error("file splitting failed", "error", err)
		return 1
	}

	printSummary(report)
	return 0
}

// applyColumnArg interprets the positional column selector: digits select by
// 1-based index, anything else selects by name.
func applyColumnArg(cfg *config.Config, arg string) {
	if idx, err := strconv.Atoi(arg); err == nil {
		cfg.Split.ColumnIndex = idx
		cfg.Split.Column = ""
		return
	}
	cfg.Split.Column = arg
	cfg.Split.ColumnIndex = 0
}

func resolveColumn(ds *dataset.Dataset, cfg *config.Config) (string, error) {
	if cfg.Split.ColumnIndex > 0 {
		return ds.ColumnAt(cfg.Split.ColumnIndex)
	}
	if !ds.HasColumn(cfg.Split.Column) {
		return "", split.NewColumnNotFoundError(cfg.Split.Column, ds.Columns)
	}
	return cfg.Split.Column, nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "" || answer == "y" || answer == "yes"
}

func printSummary(report *split.Report) {
	fmt.Printf("\nSplit complete: %d of %d files written, %d rows total (%.2fs)\n",
		len(report.Written), report.Total(), report.RowsWritten(), report.Duration.Seconds())
	for _, w := range report.Written {
		fmt.Printf("  wrote %s (%d rows)\n", w.Path, w.Rows)
	}
	if len(report.Failed) > 0 {
		fmt.Printf("\n%d file(s) failed:\n", len(report.Failed))
		for _, f := range report.Failed {
			fmt.Printf("  %s -> %s: %v\n", f.ChunkID, f.Path, f.Err)
		}
	}
}
