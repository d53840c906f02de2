package compose

import (
	"embed"
	"fmt"
)

//go:embed assets
var assetFS embed.FS

// asset returns the embedded template body with the given name. The
// asset set is fixed at compile time, so a missing name is a
// programming defect, never a runtime condition to recover from.
func asset(name string) string {
	data, err := assetFS.ReadFile("assets/" + name)
	if err != nil {
		panic(fmt.Sprintf("compose: missing embedded asset %q: %v", name, err))
	}
	return string(data)
}

// EnvVar is one environment-variable default. Order matters: the
// generated .env preserves the insertion order of contributing
// fragments.
type EnvVar struct {
	Key   string
	Value string
}

// Fragment is the immutable catalog entry for one (dimension, choice)
// pair: generated module bodies plus the metadata the engine merges
// into the entry point, the environment file, and the dependency
// manifest.
type Fragment struct {
	// Files maps logical output paths to generated module bodies.
	Files map[string]string

	// EnvVars are environment-variable defaults contributed to .env,
	// in order.
	EnvVars []EnvVar

	// Requirements are dependency specifiers ("name==version"), treated
	// as opaque strings by the manifest merge.
	Requirements []string

	// Imports are import lines spliced into the entry-point module.
	Imports []string

	// Middleware are entry-point lines registering middleware; only
	// feature fragments carry them.
	Middleware []string

	// Aux maps auxiliary output paths (outside app/) to their content.
	Aux map[string]string
}
