// Package project turns a composed file set into a project on disk and
// drives the external tooling steps that follow: virtual environment
// creation, dependency installation, and Alembic migration setup. It
// implements the core domain logic behind the "zeon init" and
// "zeon create" CLI commands.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrProjectExists indicates the target directory already contains a project.
	ErrProjectExists = errors.New("project already exists")

	// ErrPathTraversal indicates a composed path tried to escape the project root.
	ErrPathTraversal = errors.New("path escapes project root")

	// ErrVenvMissing indicates no virtual environment was found in the project.
	ErrVenvMissing = errors.New("no virtual environment found")

	// ErrAlembicNotInitialized indicates alembic.ini is absent from the project.
	ErrAlembicNotInitialized = errors.New("alembic not initialized")

	// ErrEntryPointMissing indicates app/main.py is absent from the project.
	ErrEntryPointMissing = errors.New("app/main.py not found")

	// ErrRouterExists indicates a router module with that name already exists.
	ErrRouterExists = errors.New("router already exists")
)
