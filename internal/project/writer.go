package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zeon-dev/zeon/internal/compose"
)

// Writer materializes a composed file set under a project root.
type Writer interface {
	// Write creates every file in the set relative to projectRoot,
	// creating parent directories as needed. It returns the relative
	// paths written, in the order they were written.
	Write(ctx context.Context, projectRoot string, files compose.FileSet) ([]string, error)
}

// fsWriter is the concrete implementation of Writer.
type fsWriter struct{}

// NewWriter creates a Writer backed by the local filesystem.
func NewWriter() Writer {
	return &fsWriter{}
}

// Write walks the file set in path order and writes each file. Paths
// are validated against the project root before anything touches disk,
// so a poisoned set cannot write outside the project.
func (w *fsWriter) Write(ctx context.Context, projectRoot string, files compose.FileSet) ([]string, error) {
	projectRoot = filepath.Clean(projectRoot)

	paths := files.Paths()
	for _, path := range paths {
		if err := validateWritePath(projectRoot, path); err != nil {
			return nil, err
		}
	}

	var written []string
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return written, ctx.Err()
		default:
		}

		destPath := filepath.Join(projectRoot, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return written, fmt.Errorf("project write mkdir %q: %w", filepath.Dir(destPath), err)
		}
		if err := os.WriteFile(destPath, []byte(files[path]), 0o644); err != nil {
			return written, fmt.Errorf("project write %q: %w", destPath, err)
		}
		written = append(written, path)
	}

	sort.Strings(written)
	return written, nil
}

// validateWritePath ensures a composed path does not escape projectRoot.
func validateWritePath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q", ErrPathTraversal, relPath)
	}

	return nil
}
