package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zeon-dev/zeon/internal/compose"
)

func testEngine() *compose.Engine {
	return compose.NewEngineWithSecretSource(func() (string, error) {
		return "fixed-secret", nil
	})
}

func TestInitializerInit(t *testing.T) {
	t.Run("skip_install_writes_files_only", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "acme")
		runner := newStubRunner()
		init := NewInitializer(testEngine(), NewWriter(), NewSteps(runner), nil)

		result, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			Config:      compose.DefaultConfig("acme"),
			SkipInstall: true,
		})
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}
		if len(result.CreatedFiles) == 0 {
			t.Fatal("no files created")
		}
		if result.VenvCreated {
			t.Error("venv created despite SkipInstall")
		}
		if len(runner.calls) != 0 {
			t.Errorf("external tools invoked despite SkipInstall: %v", runner.calls)
		}

		if _, err := os.Stat(filepath.Join(root, "app", "main.py")); err != nil {
			t.Errorf("app/main.py not on disk: %v", err)
		}
	})

	t.Run("existing_directory_rejected", func(t *testing.T) {
		root := t.TempDir()
		init := NewInitializer(testEngine(), NewWriter(), NewSteps(newStubRunner()), nil)

		_, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			Config:      compose.DefaultConfig("acme"),
		})
		if !errors.Is(err, ErrProjectExists) {
			t.Fatalf("Init error = %v, want ErrProjectExists", err)
		}
	})

	t.Run("runs_environment_steps", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "acme")
		runner := newStubRunner()
		init := NewInitializer(testEngine(), NewWriter(), NewSteps(runner), nil)

		result, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			Config:      compose.DefaultConfig("acme"),
		})
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}
		if !result.VenvCreated {
			t.Error("venv not created")
		}
		if result.AlembicSetup {
			t.Error("alembic set up without the feature selected")
		}
		if !runner.ran("pip", "install") {
			t.Error("requirements were not installed")
		}
	})

	t.Run("tool_failure_leaves_files_in_place", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "acme")
		runner := newStubRunner()
		runner.fail["python3 -m"] = errors.New("exit status 1")
		runner.fail["python -m"] = errors.New("exit status 1")
		init := NewInitializer(testEngine(), NewWriter(), NewSteps(runner), nil)

		result, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			Config:      compose.DefaultConfig("acme"),
		})
		if err == nil {
			t.Fatal("expected error from failing venv creation")
		}
		if result == nil || len(result.CreatedFiles) == 0 {
			t.Fatal("partial result discarded")
		}
		// No rollback: composed files stay on disk for inspection.
		if _, statErr := os.Stat(filepath.Join(root, "requirements.txt")); statErr != nil {
			t.Errorf("requirements.txt removed after tool failure: %v", statErr)
		}
	})

	t.Run("invalid_config_writes_nothing", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "acme")
		init := NewInitializer(testEngine(), NewWriter(), NewSteps(newStubRunner()), nil)

		_, err := init.Init(context.Background(), InitOptions{
			ProjectRoot: root,
			Config:      compose.ProjectConfig{Name: "", Database: compose.DatabaseSQLite, Auth: compose.AuthJWT},
		})
		if err == nil {
			t.Fatal("expected validation error")
		}
		if _, statErr := os.Stat(root); !os.IsNotExist(statErr) {
			t.Error("project root created despite validation failure")
		}
	})
}
