package compose

import (
	"strings"
	"testing"
)

func TestRenderSections(t *testing.T) {
	t.Run("single_blank_line_between_sections", func(t *testing.T) {
		got := renderSections([]entrySection{{"a"}, {"b", "c"}, {"d"}})
		if got != "a\n\nb\nc\n\nd\n" {
			t.Errorf("renderSections = %q", got)
		}
	})

	t.Run("empty_sections_leave_no_residue", func(t *testing.T) {
		got := renderSections([]entrySection{{"a"}, nil, {}, {"b"}})
		if got != "a\n\nb\n" {
			t.Errorf("renderSections = %q", got)
		}
	})
}

func TestRenderEntryPoint(t *testing.T) {
	t.Run("sqlite_jwt_exact", func(t *testing.T) {
		got := renderEntryPoint(ProjectConfig{
			Name:     "p",
			Database: DatabaseSQLite,
			Auth:     AuthJWT,
		})
		want := strings.Join([]string{
			"from fastapi import FastAPI",
			"from .database import Base, engine",
			"from .routers.auth import router as auth_router",
			"",
			"app = FastAPI()",
			"Base.metadata.create_all(bind=engine)",
			"",
			"app.include_router(auth_router)",
			"",
			`@app.get("/")`,
			"def home():",
			`    return {"message": "Hello world"}`,
			"",
		}, "\n")
		if got != want {
			t.Errorf("main.py:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("no_auth_omits_router_section", func(t *testing.T) {
		got := renderEntryPoint(ProjectConfig{
			Name:     "p",
			Database: DatabaseSQLite,
			Auth:     AuthNone,
		})
		if strings.Contains(got, "auth_router") {
			t.Errorf("auth router leaked into no-auth entry point:\n%s", got)
		}
		if strings.Contains(got, "\n\n\n") {
			t.Errorf("omitted section left an extra blank line:\n%s", got)
		}
	})

	t.Run("mongodb_shutdown_hook", func(t *testing.T) {
		got := renderEntryPoint(ProjectConfig{
			Name:     "p",
			Database: DatabaseMongoDB,
			Auth:     AuthJWT,
		})
		if !strings.Contains(got, "from .database import close_database_connection") {
			t.Errorf("missing mongodb import:\n%s", got)
		}
		hook := `@app.on_event("shutdown")` + "\n" +
			"async def shutdown_db_client():\n" +
			"    await close_database_connection()"
		if !strings.Contains(got, hook) {
			t.Errorf("missing shutdown hook:\n%s", got)
		}
		if strings.Contains(got, "Base.metadata.create_all") {
			t.Errorf("schema init leaked into document-store entry point:\n%s", got)
		}
	})

	t.Run("middleware_in_canonical_order", func(t *testing.T) {
		// Selection order is rate_limiting first, but cors precedes it
		// in the canonical feature order.
		got := renderEntryPoint(ProjectConfig{
			Name:     "p",
			Database: DatabaseSQLite,
			Auth:     AuthNone,
			Features: []FeatureKind{FeatureRateLimiting, FeatureCORS},
		})
		cors := strings.Index(got, "CORSMiddleware,")
		limiter := strings.Index(got, "limiter = Limiter(key_func=get_remote_address)")
		if cors < 0 || limiter < 0 {
			t.Fatalf("missing middleware block:\n%s", got)
		}
		if cors > limiter {
			t.Errorf("cors block after rate-limiting block:\n%s", got)
		}
		if !strings.Contains(got, "from slowapi import Limiter, _rate_limit_exceeded_handler") {
			t.Errorf("missing slowapi import:\n%s", got)
		}
	})

	t.Run("non_middleware_features_leave_no_trace", func(t *testing.T) {
		plain := renderEntryPoint(ProjectConfig{
			Name: "p", Database: DatabaseSQLite, Auth: AuthJWT,
		})
		withFeatures := renderEntryPoint(ProjectConfig{
			Name: "p", Database: DatabaseSQLite, Auth: AuthJWT,
			Features: []FeatureKind{FeatureAlembic, FeatureDocker, FeatureTesting},
		})
		if plain != withFeatures {
			t.Errorf("alembic/docker/testing changed the entry point:\n%s\n---\n%s",
				plain, withFeatures)
		}
	})
}
