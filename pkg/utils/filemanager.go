// =============================================================================
// Timesheet Reshaper - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the reshaper:
//   - Directory management
//   - Input file archival after successful processing
//
// ARCHIVAL STRATEGY:
//   - The processed input file is moved into the archive directory under a
//     timestamped name with a short unique suffix, so repeated runs against
//     identically named exports never collide.
//   - Failed runs leave the input file where it was.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles archival file operations for the reshaper.
type FileManager struct {
	// ArchiveDir is the directory archived input files are moved to.
	ArchiveDir string
}

// NewFileManager creates a new FileManager with the specified archive directory.
func NewFileManager(archiveDir string) *FileManager {
	return &FileManager{
		ArchiveDir: archiveDir,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureArchiveDir creates the archive directory if it doesn't exist.
func (fm *FileManager) EnsureArchiveDir() error {
	if err := os.MkdirAll(fm.ArchiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.ArchiveDir, err)
	}
	return nil
}

// =============================================================================
// FILE ARCHIVAL
// =============================================================================

// ArchiveInputFile moves an input file to the archive directory.
//
// PARAMETERS:
//   - filePath: The path to the file to archive.
//
// RETURNS:
//   - The path to the archived file.
//   - An error if archival fails.
func (fm *FileManager) ArchiveInputFile(filePath string) (string, error) {
	if err := fm.EnsureArchiveDir(); err != nil {
		return "", err
	}

	archivePath := filepath.Join(fm.ArchiveDir, ArchiveName(filePath))

	if err := os.Rename(filePath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive input file: %w", err)
	}

	return archivePath, nil
}

// ArchiveName builds the archive file name for an input file:
// <base>_<timestamp>_<short-uuid><ext>.
func ArchiveName(filePath string) string {
	fileName := filepath.Base(filePath)
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)

	timestamp := time.Now().Format("20060102_150405")
	suffix := uuid.New().String()[:8]

	return fmt.Sprintf("%s_%s_%s%s", base, timestamp, suffix, ext)
}
