package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeon-dev/zeon/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "zeon",
	Short: "zeon: FastAPI project generator",
	Long: `Zeon scaffolds production-ready FastAPI projects.

It resolves a declarative configuration — database backend,
authentication method, and optional features — into a complete,
internally consistent project: source modules, environment defaults,
a pinned dependency manifest, and optional Docker and test scaffolds.`,
	Version: version.GetVersion(),
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("zeon %s\n", version.GetVersion()))
}
