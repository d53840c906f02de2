package compose

import (
	"strings"
	"testing"
)

func TestGenerateSecretKey(t *testing.T) {
	t.Run("length_and_alphabet", func(t *testing.T) {
		key, err := GenerateSecretKey()
		if err != nil {
			t.Fatalf("GenerateSecretKey error: %v", err)
		}
		if len(key) != 43 {
			t.Errorf("secret key length = %d, want 43", len(key))
		}
		if strings.ContainsAny(key, "+/=") {
			t.Errorf("secret key %q contains non-URL-safe characters", key)
		}
	})

	t.Run("distinct_per_call", func(t *testing.T) {
		a, err := GenerateSecretKey()
		if err != nil {
			t.Fatalf("GenerateSecretKey error: %v", err)
		}
		b, err := GenerateSecretKey()
		if err != nil {
			t.Fatalf("GenerateSecretKey error: %v", err)
		}
		if a == b {
			t.Error("two generated keys are identical")
		}
	})
}

func TestRenderEnvFile(t *testing.T) {
	t.Run("base_vars_come_first", func(t *testing.T) {
		got := renderEnvFile("s3cret", databaseFragment(DatabaseSQLite))
		want := "SECRET_KEY=s3cret\n" +
			"ALGORITHM=HS256\n" +
			"ACCESS_TOKEN_EXPIRE_MINUTES=30\n" +
			"DATABASE_URL=sqlite:///./sql_app.db\n"
		if got != want {
			t.Errorf("env file:\n%q\nwant:\n%q", got, want)
		}
	})

	t.Run("database_vars_keep_fragment_order", func(t *testing.T) {
		got := renderEnvFile("k", databaseFragment(DatabasePostgreSQL))
		lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
		wantKeys := []string{
			"SECRET_KEY", "ALGORITHM", "ACCESS_TOKEN_EXPIRE_MINUTES",
			"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		}
		if len(lines) != len(wantKeys) {
			t.Fatalf("env file has %d lines, want %d:\n%s", len(lines), len(wantKeys), got)
		}
		for i, k := range wantKeys {
			if !strings.HasPrefix(lines[i], k+"=") {
				t.Errorf("line %d = %q, want key %q", i, lines[i], k)
			}
		}
	})

	t.Run("base_wins_on_key_collision", func(t *testing.T) {
		db := Fragment{EnvVars: []EnvVar{
			{"ALGORITHM", "RS512"},
			{"EXTRA", "1"},
		}}
		got := renderEnvFile("k", db)
		if strings.Contains(got, "RS512") {
			t.Errorf("database value overrode base key:\n%s", got)
		}
		if strings.Count(got, "ALGORITHM=") != 1 {
			t.Errorf("ALGORITHM appears more than once:\n%s", got)
		}
		if !strings.Contains(got, "EXTRA=1\n") {
			t.Errorf("non-colliding database var dropped:\n%s", got)
		}
	})
}
