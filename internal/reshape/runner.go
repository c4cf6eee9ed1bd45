// =============================================================================
// Timesheet Reshaper - Pipeline Runner
// =============================================================================
//
// This module orchestrates the reshape pipeline for a single run, from input
// parsing to tidy CSV output.
//
// PIPELINE:
//   1. Parse the input file (CSV or XLSX, chosen by extension)
//   2. Melt the wide table into tidy records
//   3. Write the output CSV
//   4. Optionally archive the input file
//
// The read and write phases are strictly sequential: the transform runs only
// after the full input has been read, and the write begins only after the
// transform has produced its full output. A failure in either phase is
// terminal for the run; the Result records which phase failed so the caller
// can report it.
//
// =============================================================================

package reshape

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/timesheet-reshaper/internal/config"
	"github.com/ginjaninja78/timesheet-reshaper/internal/csvparser"
	"github.com/ginjaninja78/timesheet-reshaper/internal/csvwriter"
	"github.com/ginjaninja78/timesheet-reshaper/internal/timesheet"
	"github.com/ginjaninja78/timesheet-reshaper/internal/xlsxparser"
	"github.com/ginjaninja78/timesheet-reshaper/pkg/utils"
)

// =============================================================================
// PHASE AND RESULT STRUCTURES
// =============================================================================

// Phase identifies which stage of the pipeline an error occurred in.
type Phase string

const (
	// PhaseRead covers opening and parsing the input file.
	PhaseRead Phase = "read"

	// PhaseWrite covers writing the output file.
	PhaseWrite Phase = "write"
)

// Result represents the outcome of a single pipeline run.
type Result struct {
	// InputFile is the path to the input file that was processed.
	InputFile string

	// OutputFile is the path to the generated tidy CSV.
	// This is empty if processing failed or ran in dry-run mode.
	OutputFile string

	// Success indicates whether the run completed.
	Success bool

	// Error contains the failure if the run did not complete.
	Error error

	// FailedPhase identifies the pipeline phase the error occurred in.
	// Empty on success.
	FailedPhase Phase

	// Stats contains run statistics.
	Stats Stats
}

// Stats contains statistics about a pipeline run.
type Stats struct {
	// RowsRead is the number of data rows read from the input.
	RowsRead int

	// RecordsEmitted is the number of tidy records produced by the melt.
	RecordsEmitted int

	// ProcessingTime is the time taken for the full run.
	ProcessingTime time.Duration
}

// =============================================================================
// RUNNER STRUCTURE
// =============================================================================

// TableParser reads an input file into a wide-format table.
// Both the CSV and the XLSX parser satisfy this signature.
type TableParser func(path string, settings config.CSVSettings) (*timesheet.Table, error)

// Runner executes the reshape pipeline for a configured input/output pair.
type Runner struct {
	cfg    *config.Config
	logger Logger

	// DryRun skips the write and archival phases.
	DryRun bool

	// parserFor selects the parser by file extension. Overridable in tests.
	parserFor func(path string) TableParser
}

// Logger is the logging interface used by the runner.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// NewRunner creates a Runner for the given configuration.
func NewRunner(cfg *config.Config, logger Logger) *Runner {
	return &Runner{
		cfg:       cfg,
		logger:    logger,
		parserFor: defaultParserFor,
	}
}

// defaultParserFor selects the input parser by file extension.
// Anything that is not .xlsx is treated as delimiter-separated text.
func defaultParserFor(path string) TableParser {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return xlsxParse
	}
	return csvparser.Parse
}

// xlsxParse adapts the XLSX parser to the TableParser signature.
// XLSX input has no delimiter settings to apply.
func xlsxParse(path string, _ config.CSVSettings) (*timesheet.Table, error) {
	return xlsxparser.Parse(path)
}

// ReadTable reads the configured input file into a table using the parser
// selected by its extension. Used by callers that only need the parsed
// input, such as the validate command.
func ReadTable(cfg *config.Config) (*timesheet.Table, error) {
	parse := defaultParserFor(cfg.InputPath)
	return parse(cfg.InputPath, cfg.CSV)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline and returns its Result.
func (r *Runner) Run() Result {
	startTime := time.Now()
	result := Result{
		InputFile: r.cfg.InputPath,
	}

	// =========================================================================
	// STEP 1: READ INPUT
	// =========================================================================

	r.logger.Info("Reading input: %s", r.cfg.InputPath)

	parse := r.parserFor(r.cfg.InputPath)
	table, err := parse(r.cfg.InputPath, r.cfg.CSV)
	if err != nil {
		result.Error = fmt.Errorf("failed to read input: %w", err)
		result.FailedPhase = PhaseRead
		return result
	}

	result.Stats.RowsRead = table.RowCount()
	r.logger.Debug("Read %d data row(s), %d column(s)", table.RowCount(), table.ColumnCount())

	// =========================================================================
	// STEP 2: MELT
	// =========================================================================
	// Pure in-memory transform; unparsable and non-positive cells are
	// filtered here, never reported as errors.

	records := Melt(table, r.cfg.TicketColumn)
	result.Stats.RecordsEmitted = len(records)
	r.logger.Debug("Melted into %d record(s)", len(records))

	// =========================================================================
	// STEP 3: WRITE OUTPUT
	// =========================================================================

	if r.DryRun {
		r.logger.Info("Dry run: skipping write of %d record(s)", len(records))
		result.Success = true
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	if err := csvwriter.Write(r.cfg.OutputPath, records); err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		result.FailedPhase = PhaseWrite
		return result
	}

	result.OutputFile = r.cfg.OutputPath
	r.logger.Info("Wrote output to: %s", r.cfg.OutputPath)

	// =========================================================================
	// STEP 4: ARCHIVE INPUT
	// =========================================================================
	// Archival failures are logged but do not fail a run whose output has
	// already been written.

	if r.cfg.Archive.Enabled {
		fm := utils.NewFileManager(r.cfg.Archive.Dir)
		archivePath, err := fm.ArchiveInputFile(r.cfg.InputPath)
		if err != nil {
			r.logger.Warn("Failed to archive input file: %v", err)
		} else {
			r.logger.Debug("Archived input to: %s", archivePath)
		}
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}

// =============================================================================
// DEFAULT LOGGER
// =============================================================================

// StdoutLogger is a simple logger that prints to stdout. Debug output is
// emitted only when Verbose is set.
type StdoutLogger struct {
	Verbose bool
}

func (l *StdoutLogger) Debug(msg string, args ...interface{}) {
	if l.Verbose {
		fmt.Printf("[DEBUG] "+msg+"\n", args...)
	}
}

func (l *StdoutLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *StdoutLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *StdoutLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}
