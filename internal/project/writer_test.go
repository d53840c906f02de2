package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zeon-dev/zeon/internal/compose"
)

func TestWriterWrite(t *testing.T) {
	t.Run("writes_nested_files", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "proj")
		files := compose.FileSet{
			".gitignore":          "venv/\n",
			"app/__init__.py":     "",
			"app/routers/auth.py": "body\n",
		}

		written, err := NewWriter().Write(context.Background(), root, files)
		if err != nil {
			t.Fatalf("Write error: %v", err)
		}
		if len(written) != 3 {
			t.Fatalf("wrote %d files, want 3", len(written))
		}

		data, err := os.ReadFile(filepath.Join(root, "app", "routers", "auth.py"))
		if err != nil {
			t.Fatalf("read written file: %v", err)
		}
		if string(data) != "body\n" {
			t.Errorf("content = %q, want %q", data, "body\n")
		}

		info, err := os.Stat(filepath.Join(root, "app", "__init__.py"))
		if err != nil {
			t.Fatalf("stat empty file: %v", err)
		}
		if info.Size() != 0 {
			t.Errorf("empty placeholder has size %d", info.Size())
		}
	})

	t.Run("rejects_escaping_paths_before_writing", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "proj")
		files := compose.FileSet{
			"ok.txt":          "fine",
			"../escape.txt":   "bad",
			"a/../../bad.txt": "bad",
		}

		_, err := NewWriter().Write(context.Background(), root, files)
		if !errors.Is(err, ErrPathTraversal) {
			t.Fatalf("Write error = %v, want ErrPathTraversal", err)
		}
		// Validation happens before any write.
		if _, statErr := os.Stat(filepath.Join(root, "ok.txt")); !os.IsNotExist(statErr) {
			t.Error("file written despite a poisoned set")
		}
	})

	t.Run("rejects_absolute_paths", func(t *testing.T) {
		root := t.TempDir()
		files := compose.FileSet{"/etc/evil": "bad"}
		if _, err := NewWriter().Write(context.Background(), root, files); !errors.Is(err, ErrPathTraversal) {
			t.Fatalf("Write error = %v, want ErrPathTraversal", err)
		}
	})

	t.Run("cancelled_context_stops_writing", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewWriter().Write(ctx, t.TempDir(), compose.FileSet{"a.txt": "x"})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Write error = %v, want context.Canceled", err)
		}
	})
}
