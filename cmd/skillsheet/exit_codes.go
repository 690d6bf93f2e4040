package main

import (
	"errors"
	"os"

	skillsheet "github.com/alnah/go-skillsheet"
	"github.com/alnah/go-skillsheet/internal/config"
	"github.com/alnah/go-skillsheet/internal/logging"
)

// Exit codes for the skillsheet CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// Per-file conversion failures do not change the exit code; these apply to
// failures before the run starts.
const (
	ExitSuccess = 0 // Run completed (individual files may have failed)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Output directory cannot be created
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, skillsheet.ErrBrowserConnect) ||
		errors.Is(err, skillsheet.ErrPageCreate) ||
		errors.Is(err, skillsheet.ErrPageLoad) ||
		errors.Is(err, skillsheet.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrOutputDir) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, logging.ErrInvalidFormat) ||
		errors.Is(err, skillsheet.ErrInvalidVocabulary) ||
		errors.Is(err, skillsheet.ErrInvalidPageSize) ||
		errors.Is(err, skillsheet.ErrInvalidMargin) ||
		errors.Is(err, skillsheet.ErrInvalidColor) ||
		errors.Is(err, skillsheet.ErrInvalidFont) ||
		errors.Is(err, skillsheet.ErrInvalidSheet) ||
		errors.Is(err, skillsheet.ErrStyleNotFound) ||
		errors.Is(err, skillsheet.ErrInvalidAssetPath) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
