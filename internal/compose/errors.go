// Package compose implements the configuration resolution and template
// composition engine: it maps a validated ProjectConfig to the complete
// in-memory FileSet of a generated FastAPI project skeleton, including
// the merged dependency manifest and environment defaults.
package compose

import (
	"errors"
	"fmt"
)

// Sentinel errors for the compose package.
var (
	// ErrEmptyProjectName indicates a configuration without a project name.
	ErrEmptyProjectName = errors.New("project name must not be empty")

	// ErrCancelled is returned when the user declines the configuration
	// summary during interactive resolution. No files are written.
	ErrCancelled = errors.New("configuration cancelled by user")
)

// ValidationError reports an explicitly supplied variant string that
// does not match any enumerated choice. Only the non-interactive path
// produces it; interactive menus fall back to defaults instead.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Field, e.Value)
}
