package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var makemigrationsCmd = &cobra.Command{
	Use:   "makemigrations [project-root]",
	Short: "Create an Alembic migration script from the models",
	Long: `Generate an Alembic autogenerate revision. The project's .env is
loaded first so the migration tool sees the configured credentials.

Examples:
  zeon makemigrations -m "add users table"
  zeon makemigrations ./myapi`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMakeMigrations,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [project-root]",
	Short: "Apply pending migrations to the database",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(makemigrationsCmd)
	rootCmd.AddCommand(migrateCmd)

	makemigrationsCmd.Flags().StringP("message", "m", "auto", "Revision message")
}

func projectRootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func runMakeMigrations(cmd *cobra.Command, args []string) error {
	root := projectRootArg(args)
	message := getStringFlag(cmd, "message")

	if err := deps.Steps.MakeMigrations(cmd.Context(), root, message); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Migration script created.")
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if err := deps.Steps.Migrate(cmd.Context(), projectRootArg(args)); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied to database.")
	return nil
}
