// Package cli provides the Cobra command tree for the zeon CLI. This
// file defines the Dependencies struct that wires the composition
// engine, the filesystem writer, and the external tooling steps
// together; commands access them through the package-level instance.
package cli

import (
	"io"
	"log/slog"

	"github.com/zeon-dev/zeon/internal/compose"
	"github.com/zeon-dev/zeon/internal/project"
	"github.com/zeon-dev/zeon/internal/ui"
)

// Dependencies holds the services used by CLI commands.
type Dependencies struct {
	Engine      *compose.Engine
	Writer      project.Writer
	Steps       *project.Steps
	Initializer project.Initializer
	Theme       *ui.Theme
	Headless    *ui.HeadlessManager
	Spinners    *ui.SpinnerFactory
	Logger      *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all dependencies. It should be
// called once during application startup.
func InitDependencies() {
	// CLI output is human-facing; structured logs are discarded unless
	// a caller injects a real handler.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	engine := compose.NewEngine()
	writer := project.NewWriter()
	steps := project.NewSteps(project.NewRunner())
	theme := ui.NewTheme()
	headless := ui.NewHeadlessManager()

	deps = &Dependencies{
		Engine:      engine,
		Writer:      writer,
		Steps:       steps,
		Initializer: project.NewInitializer(engine, writer, steps, logger),
		Theme:       theme,
		Headless:    headless,
		Spinners:    ui.NewSpinnerFactory(theme, headless),
		Logger:      logger,
	}
}
