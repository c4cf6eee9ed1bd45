// =============================================================================
// Timesheet Reshaper - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'process', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (reshaper)
//   ├── processCmd (reshaper process)
//   ├── validateCmd (reshaper validate)
//   └── versionCmd (reshaper version)
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ginjaninja78/timesheet-reshaper/internal/config"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	// Use is the one-line usage message.
	Use: "reshaper",

	// Short is a short description shown in the 'help' output.
	Short: "Timesheet Reshaper - Melt wide timesheet exports into tidy CSV",

	// Long is a longer description shown in the 'help <command>' output.
	Long: `Timesheet Reshaper is a CLI tool that reads a wide-format time-tracking
spreadsheet (one row per ticket, one column per calendar date, cell = hours)
and reshapes it into a long/tidy CSV with one row per non-zero (date, ticket)
observation.

Key Features:
  - CSV and XLSX input, chosen by file extension
  - Permissive numeric cell parsing ("2h" counts as 2 hours)
  - Empty, non-numeric, zero, and negative cells are dropped
  - Deterministic output ordering (input row order, then column order)
  - Optional archival of processed input files

Example Usage:
  reshaper process                     # Reshape using config.yaml
  reshaper process --input may.xlsx    # Override the configured input
  reshaper validate                    # Inspect config and input header`,

	// Run is the function executed when the root command is called without
	// any subcommands. In this case, we just print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig loads the configuration file, falling back to built-in defaults
// when the default config file is absent. An explicitly passed --config path
// that does not exist is an error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}
