package compose

import "slices"

// ProjectConfig is the validated, immutable configuration for one
// project generation. It is created once per invocation and never
// mutated afterwards; Compose derives a fresh FileSet from it each time.
type ProjectConfig struct {
	Name     string
	Database DatabaseKind
	Auth     AuthKind
	Features []FeatureKind
}

// DefaultConfig returns the configuration used by quick (all-defaults)
// initialization: SQLite, JWT, no features.
func DefaultConfig(name string) ProjectConfig {
	return ProjectConfig{
		Name:     name,
		Database: DefaultDatabase,
		Auth:     DefaultAuth,
	}
}

// Validate checks the configuration invariants. The feature set may be
// in any order; composition normalizes it to the canonical enumeration
// order, so two configurations differing only in feature order are
// equivalent.
func (c ProjectConfig) Validate() error {
	if c.Name == "" {
		return ErrEmptyProjectName
	}
	if !c.Database.IsValid() {
		return &ValidationError{Field: "database", Value: string(c.Database)}
	}
	if !c.Auth.IsValid() {
		return &ValidationError{Field: "auth", Value: string(c.Auth)}
	}
	for _, f := range c.Features {
		if !f.IsValid() {
			return &ValidationError{Field: "feature", Value: string(f)}
		}
	}
	return nil
}

// HasFeature reports whether the feature was selected.
func (c ProjectConfig) HasFeature(f FeatureKind) bool {
	return slices.Contains(c.Features, f)
}

// selectedFeatures returns the selected features in canonical
// enumeration order, deduplicated. Input order never influences output.
func (c ProjectConfig) selectedFeatures() []FeatureKind {
	var features []FeatureKind
	for _, f := range ValidFeatures() {
		if c.HasFeature(f) {
			features = append(features, f)
		}
	}
	return features
}

// needsLocalHashing reports whether the generated project hashes
// passwords locally. True for local JWT auth, and for the document
// store and managed schemaless backends, whose routers ship their own
// hashing usage. Delegated identity providers on relational databases
// never hash locally.
func (c ProjectConfig) needsLocalHashing() bool {
	if c.Database.IsDocumentStore() || c.Database.IsManagedSchemaless() {
		return true
	}
	return c.Auth == AuthJWT
}
