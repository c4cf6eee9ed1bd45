// =============================================================================
// Timesheet Reshaper - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which loads the configuration
// and the input file header and reports what a process run would see,
// without transforming or writing anything.
//
// COMMAND USAGE:
//   reshaper validate [flags]
//
// OUTPUT:
//   - The resolved input/output paths and ticket column
//   - The detected date columns, in the order records would be emitted
//   - A warning if the ticket column is absent from the header
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/timesheet-reshaper/internal/reshape"
	"github.com/spf13/cobra"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Inspect the configuration and input header without processing",
	Long: `The validate command loads the configuration, reads the input file, and
reports the detected ticket column and date columns. It performs no
transform and writes no output, so it is safe to run against live data.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd)
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(
		&inputPath,
		"input",
		"",
		"Path to the input timesheet (overrides input_path in config)",
	)
}

// runValidate loads the configuration and reports the input shape.
func runValidate(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if inputPath != "" {
		cfg.InputPath = inputPath
	}

	table, err := reshape.ReadTable(cfg)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	fmt.Println("=== Configuration ===")
	fmt.Printf("Input path:     %s\n", cfg.InputPath)
	fmt.Printf("Output path:    %s\n", cfg.OutputPath)
	fmt.Printf("Ticket column:  %s\n", cfg.TicketColumn)

	fmt.Println("\n=== Input ===")
	fmt.Printf("Data rows:      %d\n", table.RowCount())
	fmt.Printf("Columns:        %d\n", table.ColumnCount())

	if !table.HasColumn(cfg.TicketColumn) && table.ColumnCount() > 0 {
		fmt.Printf("\nWARNING: ticket column %q not found in header; every column\n", cfg.TicketColumn)
		fmt.Println("would be treated as a date column and tickets would be empty.")
	}

	fmt.Println("\nDate columns, in emit order:")
	for _, header := range table.Headers {
		if header == cfg.TicketColumn {
			continue
		}
		fmt.Printf("  - %s\n", header)
	}

	return nil
}
