package cli

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// preset is one example configuration shown by "zeon presets".
type preset struct {
	Name        string `yaml:"name"`
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

// presetCatalog is the embedded preset list.
type presetCatalog struct {
	Presets []preset `yaml:"presets"`
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Show available preset configurations",
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, _ []string) error {
	catalog, err := loadPresets()
	if err != nil {
		return err
	}

	md := renderPresetsMarkdown(catalog)

	// Glamour rendering only makes sense on a terminal; headless output
	// gets the raw markdown, which reads fine as plain text.
	if deps.Headless.IsHeadless() || deps.Theme.NoColor {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// loadPresets parses the embedded preset catalog.
func loadPresets() (*presetCatalog, error) {
	var catalog presetCatalog
	if err := yaml.Unmarshal(presetsYAML, &catalog); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	return &catalog, nil
}

// renderPresetsMarkdown builds the markdown shown by the command.
func renderPresetsMarkdown(catalog *presetCatalog) string {
	var b strings.Builder
	b.WriteString("# Available Preset Configurations\n\n")
	for _, p := range catalog.Presets {
		fmt.Fprintf(&b, "## %s\n\n", p.Name)
		fmt.Fprintf(&b, "%s\n\n", p.Description)
		fmt.Fprintf(&b, "```\n%s\n```\n\n", p.Command)
	}
	b.WriteString("## Usage Examples\n\n")
	b.WriteString("- Interactive setup: `zeon init myproject`\n")
	b.WriteString("- Quick setup: `zeon init myproject --quick`\n")
	b.WriteString("- Custom setup: `zeon create myproject --db postgresql --auth jwt --features alembic,docker`\n")
	return b.String()
}
