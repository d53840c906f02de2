package compose

import (
	"errors"
	"slices"
	"testing"
)

func TestParseDatabase(t *testing.T) {
	t.Run("valid_values", func(t *testing.T) {
		for _, want := range ValidDatabases() {
			got, err := ParseDatabase(string(want))
			if err != nil {
				t.Fatalf("ParseDatabase(%q) error: %v", want, err)
			}
			if got != want {
				t.Errorf("ParseDatabase(%q) = %q, want %q", want, got, want)
			}
		}
	})

	t.Run("case_and_whitespace", func(t *testing.T) {
		got, err := ParseDatabase("  PostgreSQL ")
		if err != nil {
			t.Fatalf("ParseDatabase error: %v", err)
		}
		if got != DatabasePostgreSQL {
			t.Errorf("ParseDatabase = %q, want %q", got, DatabasePostgreSQL)
		}
	})

	t.Run("unknown_value_fails", func(t *testing.T) {
		_, err := ParseDatabase("oracle")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Field != "database" {
			t.Errorf("ValidationError.Field = %q, want %q", verr.Field, "database")
		}
	})
}

func TestParseAuth(t *testing.T) {
	t.Run("valid_values", func(t *testing.T) {
		for _, want := range ValidAuthKinds() {
			got, err := ParseAuth(string(want))
			if err != nil {
				t.Fatalf("ParseAuth(%q) error: %v", want, err)
			}
			if got != want {
				t.Errorf("ParseAuth(%q) = %q, want %q", want, got, want)
			}
		}
	})

	t.Run("unknown_value_fails", func(t *testing.T) {
		if _, err := ParseAuth("oauth1"); err == nil {
			t.Fatal("expected error for unknown auth kind")
		}
	})
}

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []FeatureKind
	}{
		{"empty", "", nil},
		{"single", "docker", []FeatureKind{FeatureDocker}},
		{"multiple", "cors,docker", []FeatureKind{FeatureCORS, FeatureDocker}},
		{"whitespace_and_case", " Docker , TESTING ", []FeatureKind{FeatureDocker, FeatureTesting}},
		// Unknown tokens are dropped silently, not reported.
		{"unknown_dropped", "docker,kubernetes,cors", []FeatureKind{FeatureDocker, FeatureCORS}},
		{"all_unknown", "foo,bar", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFeatures(tt.csv)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseFeatures(%q) = %v, want %v", tt.csv, got, tt.want)
			}
		})
	}
}

func TestDatabaseByIndex(t *testing.T) {
	t.Run("menu_order", func(t *testing.T) {
		want := []DatabaseKind{
			DatabaseSQLite,
			DatabasePostgreSQL,
			DatabaseMongoDB,
			DatabaseSupabase,
			DatabaseFirebase,
		}
		for i, w := range want {
			if got := DatabaseByIndex(i + 1); got != w {
				t.Errorf("DatabaseByIndex(%d) = %q, want %q", i+1, got, w)
			}
		}
	})

	// Out-of-range menu selections are not errors: they fall back to
	// the dimension default.
	t.Run("out_of_range_falls_back_to_default", func(t *testing.T) {
		for _, i := range []int{0, -3, 6, 99} {
			if got := DatabaseByIndex(i); got != DefaultDatabase {
				t.Errorf("DatabaseByIndex(%d) = %q, want default %q", i, got, DefaultDatabase)
			}
		}
	})
}

func TestAuthOptionsFor(t *testing.T) {
	tests := []struct {
		db    DatabaseKind
		first AuthKind
		count int
	}{
		// Database-specific identity providers are offered first.
		{DatabaseSupabase, AuthSupabase, 3},
		{DatabaseFirebase, AuthFirebase, 3},
		{DatabaseSQLite, AuthJWT, 2},
		{DatabasePostgreSQL, AuthJWT, 2},
		{DatabaseMongoDB, AuthJWT, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.db), func(t *testing.T) {
			opts := AuthOptionsFor(tt.db)
			if len(opts) != tt.count {
				t.Fatalf("AuthOptionsFor(%q) has %d options, want %d", tt.db, len(opts), tt.count)
			}
			if opts[0] != tt.first {
				t.Errorf("first option = %q, want %q", opts[0], tt.first)
			}
			if opts[len(opts)-1] != AuthNone {
				t.Errorf("last option = %q, want %q", opts[len(opts)-1], AuthNone)
			}
		})
	}
}

func TestAuthByIndex(t *testing.T) {
	t.Run("selects_from_database_menu", func(t *testing.T) {
		if got := AuthByIndex(DatabaseSupabase, 1); got != AuthSupabase {
			t.Errorf("AuthByIndex(supabase, 1) = %q, want %q", got, AuthSupabase)
		}
		if got := AuthByIndex(DatabaseSQLite, 2); got != AuthNone {
			t.Errorf("AuthByIndex(sqlite, 2) = %q, want %q", got, AuthNone)
		}
	})

	t.Run("out_of_range_falls_back_to_default", func(t *testing.T) {
		if got := AuthByIndex(DatabaseSQLite, 9); got != DefaultAuth {
			t.Errorf("AuthByIndex(sqlite, 9) = %q, want default %q", got, DefaultAuth)
		}
		if got := AuthByIndex(DatabaseFirebase, 0); got != DefaultAuth {
			t.Errorf("AuthByIndex(firebase, 0) = %q, want default %q", got, DefaultAuth)
		}
	})
}

func TestFeaturesByIndexes(t *testing.T) {
	got := FeaturesByIndexes([]int{2, 7, 4, 0})
	want := []FeatureKind{FeatureDocker, FeatureCORS}
	if !slices.Equal(got, want) {
		t.Errorf("FeaturesByIndexes = %v, want %v", got, want)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("empty_name_rejected", func(t *testing.T) {
		cfg := DefaultConfig("")
		if err := cfg.Validate(); !errors.Is(err, ErrEmptyProjectName) {
			t.Errorf("Validate = %v, want ErrEmptyProjectName", err)
		}
	})

	t.Run("defaults_valid", func(t *testing.T) {
		cfg := DefaultConfig("acme")
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate error: %v", err)
		}
		if cfg.Database != DatabaseSQLite || cfg.Auth != AuthJWT {
			t.Errorf("DefaultConfig = %+v, want sqlite/jwt", cfg)
		}
	})

	t.Run("invalid_kind_rejected", func(t *testing.T) {
		cfg := ProjectConfig{Name: "acme", Database: "oracle", Auth: AuthJWT}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for invalid database kind")
		}
	})
}
