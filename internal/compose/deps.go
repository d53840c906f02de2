package compose

import (
	"slices"
	"strings"
)

// mergeRequirements concatenates the dependency specifiers of every
// contributing fragment, deduplicates them, and renders the manifest.
//
// Dedup is by exact string equality only: two specifiers for the same
// package pinned at different versions both survive. The engine is not
// a version-conflict resolver, and reconciling pins here would change
// the observable manifest of existing configurations.
//
// Output lines are sorted lexicographically ascending and joined with a
// single trailing newline.
func mergeRequirements(fragments ...Fragment) string {
	var specs []string
	for _, f := range fragments {
		specs = append(specs, f.Requirements...)
	}

	slices.Sort(specs)
	specs = slices.Compact(specs)

	return strings.Join(specs, "\n") + "\n"
}

// requirementFragments collects every fragment contributing to the
// manifest for a configuration: base runtime set, database, auth,
// selected features in canonical order, and the hashing pair when local
// password hashing is needed.
func requirementFragments(c ProjectConfig) []Fragment {
	fragments := []Fragment{{Requirements: baseRequirements}}
	fragments = append(fragments, databaseFragment(c.Database))
	fragments = append(fragments, authFragment(c.Auth))
	for _, f := range c.selectedFeatures() {
		fragments = append(fragments, featureFragment(f))
	}
	if c.needsLocalHashing() {
		fragments = append(fragments, Fragment{Requirements: hashingRequirements})
	}
	return fragments
}
