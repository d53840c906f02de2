package compose

import (
	"maps"
	"slices"
)

// FileSet maps relative output paths to final file content. It is
// produced atomically in memory: a caller never observes a partially
// composed set.
type FileSet map[string]string

// Paths returns the output paths in sorted order.
func (fs FileSet) Paths() []string {
	return slices.Sorted(maps.Keys(fs))
}

// Has reports whether the set contains the path.
func (fs FileSet) Has(path string) bool {
	_, ok := fs[path]
	return ok
}
