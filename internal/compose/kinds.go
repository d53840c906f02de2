package compose

import "strings"

// DatabaseKind selects the data-storage backend of a generated project.
type DatabaseKind string

const (
	DatabaseSQLite     DatabaseKind = "sqlite"
	DatabasePostgreSQL DatabaseKind = "postgresql"
	DatabaseMongoDB    DatabaseKind = "mongodb"
	DatabaseSupabase   DatabaseKind = "supabase"
	DatabaseFirebase   DatabaseKind = "firebase"
)

// DefaultDatabase is used when no database is chosen, or when an
// interactive menu selection is out of range.
const DefaultDatabase = DatabaseSQLite

// ValidDatabases returns all database kinds in menu order.
func ValidDatabases() []DatabaseKind {
	return []DatabaseKind{
		DatabaseSQLite,
		DatabasePostgreSQL,
		DatabaseMongoDB,
		DatabaseSupabase,
		DatabaseFirebase,
	}
}

// IsValid checks whether the database kind is an enumerated value.
func (d DatabaseKind) IsValid() bool {
	switch d {
	case DatabaseSQLite, DatabasePostgreSQL, DatabaseMongoDB, DatabaseSupabase, DatabaseFirebase:
		return true
	}
	return false
}

// IsRelational reports whether the backend uses the SQLAlchemy
// relational stack (engine, declarative Base, session factory).
func (d DatabaseKind) IsRelational() bool {
	switch d {
	case DatabaseSQLite, DatabasePostgreSQL, DatabaseSupabase:
		return true
	}
	return false
}

// IsDocumentStore reports whether the backend is the native-driver
// document store. Such a backend always uses its own router
// implementation, regardless of the selected auth kind.
func (d DatabaseKind) IsDocumentStore() bool {
	return d == DatabaseMongoDB
}

// IsManagedSchemaless reports whether the backend is the managed
// schemaless cloud backend, which also carries its own router.
func (d DatabaseKind) IsManagedSchemaless() bool {
	return d == DatabaseFirebase
}

// RequiresSchemaInit reports whether the generated entry point must
// create the relational schema at startup.
func (d DatabaseKind) RequiresSchemaInit() bool {
	return d.IsRelational()
}

// RequiresShutdownHook reports whether the generated entry point must
// close the database connection at process exit.
func (d DatabaseKind) RequiresShutdownHook() bool {
	return d == DatabaseMongoDB
}

// AuthKind selects the identity/authentication mechanism.
type AuthKind string

const (
	AuthJWT      AuthKind = "jwt"
	AuthSupabase AuthKind = "supabase"
	AuthFirebase AuthKind = "firebase"
	AuthNone     AuthKind = "none"
)

// DefaultAuth is used when no auth kind is chosen, or when an
// interactive menu selection is out of range.
const DefaultAuth = AuthJWT

// ValidAuthKinds returns all auth kinds in enumeration order.
func ValidAuthKinds() []AuthKind {
	return []AuthKind{AuthJWT, AuthSupabase, AuthFirebase, AuthNone}
}

// IsValid checks whether the auth kind is an enumerated value.
func (a AuthKind) IsValid() bool {
	switch a {
	case AuthJWT, AuthSupabase, AuthFirebase, AuthNone:
		return true
	}
	return false
}

// IsDelegated reports whether credential verification is performed by
// an external managed identity provider rather than locally.
func (a AuthKind) IsDelegated() bool {
	return a == AuthSupabase || a == AuthFirebase
}

// FeatureKind selects an optional add-on feature.
type FeatureKind string

const (
	FeatureAlembic      FeatureKind = "alembic"
	FeatureDocker       FeatureKind = "docker"
	FeatureTesting      FeatureKind = "testing"
	FeatureCORS         FeatureKind = "cors"
	FeatureRateLimiting FeatureKind = "rate_limiting"
)

// ValidFeatures returns all features in canonical enumeration order.
// Composition always consults feature fragments in this order, no
// matter how the caller ordered its selection.
func ValidFeatures() []FeatureKind {
	return []FeatureKind{
		FeatureAlembic,
		FeatureDocker,
		FeatureTesting,
		FeatureCORS,
		FeatureRateLimiting,
	}
}

// IsValid checks whether the feature kind is an enumerated value.
func (f FeatureKind) IsValid() bool {
	switch f {
	case FeatureAlembic, FeatureDocker, FeatureTesting, FeatureCORS, FeatureRateLimiting:
		return true
	}
	return false
}

// ParseDatabase converts an explicit variant string into a DatabaseKind.
// Unknown values are a validation failure; this is the strict path used
// by non-interactive commands.
func ParseDatabase(s string) (DatabaseKind, error) {
	d := DatabaseKind(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", &ValidationError{Field: "database", Value: s}
	}
	return d, nil
}

// ParseAuth converts an explicit variant string into an AuthKind.
func ParseAuth(s string) (AuthKind, error) {
	a := AuthKind(strings.ToLower(strings.TrimSpace(s)))
	if !a.IsValid() {
		return "", &ValidationError{Field: "auth", Value: s}
	}
	return a, nil
}

// ParseFeatures converts a comma-separated feature list into feature
// kinds. Unrecognized tokens are dropped silently; this matches the
// non-interactive contract, where a typo in one feature must not abort
// project creation.
func ParseFeatures(csv string) []FeatureKind {
	var features []FeatureKind
	for _, tok := range strings.Split(csv, ",") {
		f := FeatureKind(strings.ToLower(strings.TrimSpace(tok)))
		if f.IsValid() {
			features = append(features, f)
		}
	}
	return features
}

// DatabaseByIndex resolves a 1-based menu index to a database kind.
// Out-of-range indexes fall back to the default instead of failing:
// interactive resolution is deliberately non-fatal.
func DatabaseByIndex(i int) DatabaseKind {
	kinds := ValidDatabases()
	if i < 1 || i > len(kinds) {
		return DefaultDatabase
	}
	return kinds[i-1]
}

// AuthOptionsFor returns the auth menu for the chosen database. A
// database with its own identity provider offers that provider first;
// the first entry is the dimension default for the menu.
func AuthOptionsFor(db DatabaseKind) []AuthKind {
	switch db {
	case DatabaseSupabase:
		return []AuthKind{AuthSupabase, AuthJWT, AuthNone}
	case DatabaseFirebase:
		return []AuthKind{AuthFirebase, AuthJWT, AuthNone}
	default:
		return []AuthKind{AuthJWT, AuthNone}
	}
}

// AuthByIndex resolves a 1-based menu index against the auth menu for
// the chosen database. Out-of-range indexes fall back to JWT, the
// dimension default.
func AuthByIndex(db DatabaseKind, i int) AuthKind {
	opts := AuthOptionsFor(db)
	if i < 1 || i > len(opts) {
		return DefaultAuth
	}
	return opts[i-1]
}

// FeaturesByIndexes resolves 1-based menu indexes to feature kinds,
// silently skipping indexes outside the menu.
func FeaturesByIndexes(indexes []int) []FeatureKind {
	kinds := ValidFeatures()
	var features []FeatureKind
	for _, i := range indexes {
		if i >= 1 && i <= len(kinds) {
			features = append(features, kinds[i-1])
		}
	}
	return features
}
