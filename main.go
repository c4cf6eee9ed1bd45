// =============================================================================
// Timesheet Reshaper - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Timesheet Reshaper CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   reshaper process        - Reshape the configured timesheet into tidy CSV
//   reshaper validate       - Inspect the configuration and input header
//   reshaper version        - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/timesheet-reshaper/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
