package main

import (
	"errors"
	"os"

	md2wp "github.com/Flying-Doggy/go-md2wp"
	"github.com/Flying-Doggy/go-md2wp/internal/config"
	"github.com/Flying-Doggy/go-md2wp/internal/wordpress"
)

// Exit codes for md2wp CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Post created
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitRemote  = 4 // WordPress connection, auth, upload, or post errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Remote errors (exit 4)
	if errors.Is(err, md2wp.ErrAuthRejected) ||
		errors.Is(err, md2wp.ErrUploadFailed) ||
		errors.Is(err, md2wp.ErrPublishFailed) ||
		errors.Is(err, wordpress.ErrConnect) {
		return ExitRemote
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2wp.ErrDocumentNotFound) ||
		errors.Is(err, md2wp.ErrAssetNotFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidStatus) ||
		errors.Is(err, config.ErrInvalidSiteURL) ||
		errors.Is(err, md2wp.ErrEmptyPath) ||
		errors.Is(err, md2wp.ErrInvalidStatus) ||
		errors.Is(err, md2wp.ErrInvalidPrefix) ||
		errors.Is(err, wordpress.ErrInvalidSiteURL) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrMissingSiteURL) ||
		errors.Is(err, ErrMissingCredentials) {
		return ExitUsage
	}

	return ExitGeneral
}
