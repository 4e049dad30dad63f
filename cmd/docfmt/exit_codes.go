package main

import (
	"errors"
	"os"

	docfmt "github.com/alnah/go-docfmt"
	"github.com/alnah/go-docfmt/internal/config"
)

// Exit codes for docfmt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful compilation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitAI      = 4 // AI service errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// AI errors (exit 4)
	if errors.Is(err, docfmt.ErrAIUnavailable) ||
		errors.Is(err, docfmt.ErrAIResponse) {
		return ExitAI
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, docfmt.ErrEmptyInput) ||
		errors.Is(err, docfmt.ErrInvalidFormat) ||
		errors.Is(err, docfmt.ErrInvalidOptions) ||
		errors.Is(err, docfmt.ErrUnknownSpec) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
