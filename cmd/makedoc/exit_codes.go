package main

import (
	"errors"
	"os"

	"github.com/bpftrace/makedoc"
	"github.com/bpftrace/makedoc/internal/config"
)

// Exit codes for makedoc CLI.
const (
	ExitSuccess = 0 // Page written
	ExitUsage   = 1 // Missing input, bad flags, or unexpected error
	ExitConfig  = 2 // Invalid config file, env, or template contract
	ExitIO      = 3 // Source, template, or output not readable/writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Config errors (exit 2), checked first since some wrap os errors
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, ErrEnvFile) ||
		errors.Is(err, makedoc.ErrInvalidAssetPath) ||
		errors.Is(err, makedoc.ErrInvalidMarkers) ||
		errors.Is(err, makedoc.ErrInvalidPlaceholders) ||
		errors.Is(err, makedoc.ErrEmptyTemplate) ||
		errors.Is(err, makedoc.ErrPlaceholderMissing) ||
		errors.Is(err, makedoc.ErrPlaceholderDuplicated) {
		return ExitConfig
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, makedoc.ErrTemplateRead) ||
		errors.Is(err, makedoc.ErrScan) {
		return ExitIO
	}

	return ExitUsage
}
