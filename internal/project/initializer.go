package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zeon-dev/zeon/internal/compose"
)

// InitOptions configures project initialization.
type InitOptions struct {
	ProjectRoot string                // Directory to create the project in.
	Config      compose.ProjectConfig // Resolved project configuration.
	SkipInstall bool                  // If true, skip venv creation and dependency installation.
}

// InitResult summarizes the outcome of project initialization.
type InitResult struct {
	CreatedFiles []string // Relative paths of files written, sorted.
	VenvCreated  bool     // Whether a virtual environment was created.
	AlembicSetup bool     // Whether the alembic scaffold was initialized.
	Warnings     []string // Non-fatal warnings during initialization.
}

// Initializer scaffolds a new project from a resolved configuration.
type Initializer interface {
	// Init composes the project files, writes them under the root, and
	// runs the external tooling steps.
	Init(ctx context.Context, opts InitOptions) (*InitResult, error)
}

// projectInitializer is the concrete implementation of Initializer.
type projectInitializer struct {
	engine *compose.Engine
	writer Writer
	steps  *Steps
	logger *slog.Logger
}

// NewInitializer creates an Initializer with the given dependencies.
func NewInitializer(engine *compose.Engine, writer Writer, steps *Steps, logger *slog.Logger) Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectInitializer{
		engine: engine,
		writer: writer,
		steps:  steps,
		logger: logger,
	}
}

// Init creates the project. A failing external tool aborts the
// remaining steps; the files already on disk are deliberately left in
// place so the user can inspect or resume by hand.
func (i *projectInitializer) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	opts.ProjectRoot = filepath.Clean(opts.ProjectRoot)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(opts.ProjectRoot); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, opts.ProjectRoot)
	}

	i.logger.Info("initializing project",
		"root", opts.ProjectRoot,
		"name", opts.Config.Name,
		"database", opts.Config.Database,
		"auth", opts.Config.Auth,
	)

	files, err := i.engine.Compose(opts.Config)
	if err != nil {
		return nil, fmt.Errorf("compose project files: %w", err)
	}

	result := &InitResult{}

	written, err := i.writer.Write(ctx, opts.ProjectRoot, files)
	if err != nil {
		return nil, fmt.Errorf("write project files: %w", err)
	}
	result.CreatedFiles = written

	if opts.SkipInstall {
		i.logger.Info("skipping environment setup", "files", len(result.CreatedFiles))
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := i.steps.CreateVenv(ctx, opts.ProjectRoot); err != nil {
		return result, err
	}
	result.VenvCreated = true

	// Alembic scaffolding precedes the bulk install so its console
	// script exists when the project requirements pin a different
	// alembic version.
	if opts.Config.HasFeature(compose.FeatureAlembic) {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := i.steps.SetupAlembic(ctx, opts.ProjectRoot, opts.Config.Database); err != nil {
			return result, err
		}
		result.AlembicSetup = true
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := i.steps.InstallRequirements(ctx, opts.ProjectRoot); err != nil {
		return result, err
	}

	i.logger.Info("project initialized",
		"files", len(result.CreatedFiles),
		"venv", result.VenvCreated,
	)

	return result, nil
}
