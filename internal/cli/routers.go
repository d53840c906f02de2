package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeon-dev/zeon/internal/project"
)

var routersCmd = &cobra.Command{
	Use:   "routers <router-name> [project-root]",
	Short: "Create a new router and register it in app/main.py",
	Long: `Create a minimal router module under app/routers/ and wire it into
the entry point: the import goes after the last existing import line
and the registration is appended at the bottom.

Examples:
  zeon routers items
  zeon routers orders ./myapi`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRouters,
}

func init() {
	rootCmd.AddCommand(routersCmd)
}

func runRouters(cmd *cobra.Command, args []string) error {
	name := args[0]
	root := "."
	if len(args) > 1 {
		root = args[1]
	}

	if err := project.AddRouter(root, name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Router %q created and added to app/main.py\n", name)
	return nil
}
