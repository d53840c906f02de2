package compose

import "strings"

// The entry-point module is synthesized section by section in a fixed
// order, never copied wholesale. Present sections are joined by exactly
// one blank line; an omitted section leaves no residue. The fixed order
// is: imports, application creation (with schema initialization where
// the backend needs it), one middleware block per selected middleware
// feature, router registration, shutdown hook, health-check route.

// entrySection is one optional, ordered group of lines.
type entrySection []string

// renderSections joins non-empty sections with a single separating
// blank line and terminates the module with one newline.
func renderSections(sections []entrySection) string {
	var present []string
	for _, s := range sections {
		if len(s) > 0 {
			present = append(present, strings.Join(s, "\n"))
		}
	}
	return strings.Join(present, "\n\n") + "\n"
}

// renderEntryPoint builds app/main.py for the configuration.
func renderEntryPoint(c ProjectConfig) string {
	db := databaseFragment(c.Database)

	// Imports: framework first, then the database module, then the
	// identity router, then middleware imports in canonical feature
	// order.
	imports := entrySection{"from fastapi import FastAPI"}
	imports = append(imports, db.Imports...)
	if c.Auth != AuthNone {
		imports = append(imports, "from .routers.auth import router as auth_router")
	}
	for _, f := range c.selectedFeatures() {
		imports = append(imports, featureFragment(f).Imports...)
	}

	// Application object, plus schema creation for backends that need
	// it at startup.
	creation := entrySection{"app = FastAPI()"}
	if c.Database.RequiresSchemaInit() {
		creation = append(creation, "Base.metadata.create_all(bind=engine)")
	}

	// One block per middleware feature, in canonical order.
	var middleware []entrySection
	for _, f := range c.selectedFeatures() {
		if mw := featureFragment(f).Middleware; len(mw) > 0 {
			middleware = append(middleware, entrySection(mw))
		}
	}

	var routers entrySection
	if c.Auth != AuthNone {
		routers = entrySection{"app.include_router(auth_router)"}
	}

	var shutdown entrySection
	if c.Database.RequiresShutdownHook() {
		shutdown = entrySection{
			`@app.on_event("shutdown")`,
			"async def shutdown_db_client():",
			"    await close_database_connection()",
		}
	}

	health := entrySection{
		`@app.get("/")`,
		"def home():",
		`    return {"message": "Hello world"}`,
	}

	sections := []entrySection{imports, creation}
	sections = append(sections, middleware...)
	sections = append(sections, routers, shutdown, health)
	return renderSections(sections)
}
