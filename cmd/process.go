// =============================================================================
// Timesheet Reshaper - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the full reshape
// pipeline: read the wide-format input, melt it into tidy records, write the
// output CSV, and optionally archive the input file.
//
// COMMAND USAGE:
//   reshaper process [flags]
//
// FLAGS:
//   --input    : Override the configured input path
//   --output   : Override the configured output path
//   --dry-run  : Read and transform, print counts, but write nothing
//
// PIPELINE:
//   1. Load configuration (flags override paths)
//   2. Read the input table (CSV or XLSX by extension)
//   3. Melt wide rows into tidy records
//   4. Write the output CSV
//   5. Archive the input file (if enabled)
//   6. Print a summary
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/timesheet-reshaper/internal/reshape"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputPath overrides the configured input path when non-empty.
var inputPath string

// outputPath overrides the configured output path when non-empty.
var outputPath string

// dryRun simulates processing without writing the output file.
var dryRun bool

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Reshape the configured timesheet into a tidy CSV",
	Long: `The process command reads the configured wide-format timesheet, reshapes
it into one row per non-zero (date, ticket) observation, and writes the
result as a CSV with the columns Date, Ticket, and Time Spent.

Cells that are empty, non-numeric, zero, or negative produce no output row.
Numeric parsing is permissive: a cell like "2h" counts as 2 hours. Output
rows keep the input ordering (row order first, then column order); duplicate
ticket rows are emitted separately, never summed.

On a read or write failure the run stops with a non-zero exit status; no
partial-output guarantee is made for the write phase.`,

	// RunE is like Run but returns an error, which is preferred for commands
	// that can fail.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&inputPath,
		"input",
		"",
		"Path to the input timesheet (overrides input_path in config)",
	)

	processCmd.Flags().StringVar(
		&outputPath,
		"output",
		"",
		"Path to the output CSV (overrides output_path in config)",
	)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Read and transform without writing the output file",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess loads the configuration and executes the pipeline.
func runProcess(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if inputPath != "" {
		cfg.InputPath = inputPath
	}
	if outputPath != "" {
		cfg.OutputPath = outputPath
	}

	logger := &reshape.StdoutLogger{Verbose: verbose || cfg.LogLevel == "debug"}

	runner := reshape.NewRunner(cfg, logger)
	runner.DryRun = dryRun

	result := runner.Run()
	if !result.Success {
		return fmt.Errorf("%s phase failed: %w", result.FailedPhase, result.Error)
	}

	// Informational summary; counts are not part of the output contract.
	fmt.Println("\n=== Reshape Complete ===")
	fmt.Printf("Rows read:        %d\n", result.Stats.RowsRead)
	fmt.Printf("Records written:  %d\n", result.Stats.RecordsEmitted)
	if result.OutputFile != "" {
		fmt.Printf("Output file:      %s\n", result.OutputFile)
	}
	fmt.Printf("Time elapsed:     %s\n", result.Stats.ProcessingTime)

	return nil
}
