package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/zeon-dev/zeon/internal/cli/wizard"
	"github.com/zeon-dev/zeon/internal/compose"
)

var initCmd = &cobra.Command{
	Use:   "init <project-name>",
	Short: "Initialize a new FastAPI project",
	Long: `Initialize a new FastAPI project.

Runs the interactive configuration wizard when a terminal is attached.
With --quick, or without a terminal, the defaults are used: SQLite
database, JWT authentication, no additional features.

Examples:
  zeon init myapi            Interactive configuration
  zeon init myapi --quick    Defaults, no questions asked`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("quick", "q", false, "Skip interactive configuration and use defaults")
	initCmd.Flags().Bool("no-install", false, "Write files only; skip venv creation and dependency installation")
}

// runInit resolves the configuration and runs the creation pipeline.
func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg := compose.DefaultConfig(name)
	if !getBoolFlag(cmd, "quick") && !deps.Headless.IsHeadless() {
		result, err := wizard.RunDefault(name)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				return compose.ErrCancelled
			}
			return err
		}
		cfg = result.Config(name)
	}

	return scaffoldProject(cmd, cfg, getBoolFlag(cmd, "no-install"))
}
