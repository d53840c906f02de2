package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <package-name> [project-root]",
	Short: "Install a package into the project and update requirements.txt",
	Long: `Install a Python package into the project's virtual environment and
regenerate requirements.txt from the environment's actual installed
state (pip freeze).

Examples:
  zeon add requests
  zeon add redis ./myapi`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	pkg := args[0]
	root := "."
	if len(args) > 1 {
		root = args[1]
	}

	sp := deps.Spinners.Start(fmt.Sprintf("Installing %s", pkg))
	err := deps.Steps.InstallPackage(cmd.Context(), root, pkg)
	sp.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Package %q installed and added to requirements.txt\n", pkg)
	return nil
}
