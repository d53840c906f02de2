package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeon-dev/zeon/internal/compose"
	"github.com/zeon-dev/zeon/internal/project"
)

var createCmd = &cobra.Command{
	Use:   "create <project-name>",
	Short: "Create a FastAPI project with an explicit configuration",
	Long: `Create a FastAPI project non-interactively.

The database and auth kinds must match an enumerated value exactly;
unrecognized feature tokens are dropped silently.

Examples:
  zeon create myapi --db postgresql --auth jwt --features alembic,docker
  zeon create myapi --db mongodb --auth jwt --features testing,cors
  zeon create myapi --db sqlite --auth none --no-install`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateCreateFlags,
	RunE:    runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().String("db", string(compose.DefaultDatabase), "Database to use (sqlite, postgresql, mongodb, supabase, firebase)")
	createCmd.Flags().String("auth", string(compose.DefaultAuth), "Authentication method (jwt, supabase, firebase, none)")
	createCmd.Flags().String("features", "", "Comma-separated features (alembic,docker,testing,cors,rate_limiting)")
	createCmd.Flags().Bool("no-install", false, "Write files only; skip venv creation and dependency installation")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateCreateFlags rejects unknown database and auth values before
// execution. Feature tokens are deliberately not validated here.
func validateCreateFlags(cmd *cobra.Command, _ []string) error {
	if _, err := compose.ParseDatabase(getStringFlag(cmd, "db")); err != nil {
		return fmt.Errorf("invalid --db value: %w", err)
	}
	if _, err := compose.ParseAuth(getStringFlag(cmd, "auth")); err != nil {
		return fmt.Errorf("invalid --auth value: %w", err)
	}
	return nil
}

// runCreate executes the non-interactive creation workflow.
func runCreate(cmd *cobra.Command, args []string) error {
	db, err := compose.ParseDatabase(getStringFlag(cmd, "db"))
	if err != nil {
		return err
	}
	auth, err := compose.ParseAuth(getStringFlag(cmd, "auth"))
	if err != nil {
		return err
	}

	cfg := compose.ProjectConfig{
		Name:     args[0],
		Database: db,
		Auth:     auth,
		Features: compose.ParseFeatures(getStringFlag(cmd, "features")),
	}

	return scaffoldProject(cmd, cfg, getBoolFlag(cmd, "no-install"))
}

// scaffoldProject runs the shared creation pipeline: print the resolved
// configuration, compose and write the files, then run the environment
// steps unless skipped.
func scaffoldProject(cmd *cobra.Command, cfg compose.ProjectConfig, noInstall bool) error {
	out := cmd.OutOrStdout()
	s := newStyles()

	fmt.Fprintln(out, s.banner.Render(fmt.Sprintf("Creating FastAPI project: %s", cfg.Name)))
	fmt.Fprintln(out, renderConfigCard(cfg))

	sp := deps.Spinners.Start("Composing project files")
	result, err := deps.Initializer.Init(cmd.Context(), project.InitOptions{
		ProjectRoot: cfg.Name,
		Config:      cfg,
		SkipInstall: noInstall,
	})
	sp.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, s.success.Render(fmt.Sprintf("Project %s initialized successfully!", cfg.Name)))
	printNextSteps(cmd, cfg, result)
	return nil
}

// printNextSteps prints configuration-dependent follow-up instructions.
func printNextSteps(cmd *cobra.Command, cfg compose.ProjectConfig, result *project.InitResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "\nNext steps:")
	step := 1
	say := func(format string, args ...any) {
		fmt.Fprintf(out, "  %d. ", step)
		fmt.Fprintf(out, format+"\n", args...)
		step++
	}

	say("cd %s", cfg.Name)
	say("Update .env file with your database credentials")

	switch cfg.Database {
	case compose.DatabasePostgreSQL:
		say("Make sure PostgreSQL is running")
	case compose.DatabaseMongoDB:
		say("Make sure MongoDB is running")
	case compose.DatabaseSupabase:
		say("Update .env with your Supabase credentials")
	case compose.DatabaseFirebase:
		say("Add your Firebase service account JSON file")
	}

	if cfg.HasFeature(compose.FeatureAlembic) {
		say("Run: zeon makemigrations \"Initial migration\"")
		say("Run: zeon migrate")
	}
	say("Start development: uvicorn app.main:app --reload")

	if cfg.HasFeature(compose.FeatureDocker) {
		fmt.Fprintln(out, "\nDocker commands:")
		fmt.Fprintln(out, "  Build: docker-compose build")
		fmt.Fprintln(out, "  Run: docker-compose up")
	}
	if cfg.HasFeature(compose.FeatureTesting) {
		fmt.Fprintln(out, "\nTesting:")
		fmt.Fprintln(out, "  Run tests: pytest")
	}
}
