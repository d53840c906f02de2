package project

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// routerStub is the body of a newly scaffolded router module.
const routerStub = `
from fastapi import APIRouter

router = APIRouter(prefix='/%[1]s', tags=['%[1]s'])

@router.get("/")
def read_root():
    return {"message": "Hello from %[1]s!"}
`

// AddRouter scaffolds app/routers/<name>.py and rewires app/main.py to
// import and register it. The entry point is edited textually: the
// import goes after the last existing import line and the registration
// is appended at the bottom. Re-running for an already wired router is
// a no-op for the entry point.
func AddRouter(projectRoot, name string) error {
	routersDir := filepath.Join(projectRoot, "app", "routers")
	mainPath := filepath.Join(projectRoot, "app", "main.py")

	if err := os.MkdirAll(routersDir, 0o755); err != nil {
		return fmt.Errorf("create routers directory: %w", err)
	}

	routerPath := filepath.Join(routersDir, name+".py")
	if _, err := os.Stat(routerPath); err == nil {
		return fmt.Errorf("%w: %s", ErrRouterExists, name)
	}
	if err := os.WriteFile(routerPath, []byte(fmt.Sprintf(routerStub, name)), 0o644); err != nil {
		return fmt.Errorf("write router %s: %w", name, err)
	}

	main, err := os.ReadFile(mainPath)
	if err != nil {
		return ErrEntryPointMissing
	}

	rewired, changed := rewireEntryPoint(string(main), name)
	if !changed {
		return nil
	}
	if err := os.WriteFile(mainPath, []byte(rewired), 0o644); err != nil {
		return fmt.Errorf("rewire app/main.py: %w", err)
	}

	return nil
}

// rewireEntryPoint inserts the router import after the last import line
// and appends the registration statement at the bottom. It reports
// false when the import is already present.
func rewireEntryPoint(main, name string) (string, bool) {
	importLine := fmt.Sprintf("from .routers.%s import router as %s_router", name, name)
	includeLine := fmt.Sprintf("\napp.include_router(%s_router)", name)

	lines := strings.Split(main, "\n")
	for _, line := range lines {
		if line == importLine {
			return main, false
		}
	}

	insertIndex := 0
	for i, line := range lines {
		if strings.HasPrefix(line, "import") || strings.HasPrefix(line, "from") {
			insertIndex = i + 1
		}
	}

	lines = slices.Insert(lines, insertIndex, importLine)
	lines = append(lines, includeLine)
	return strings.Join(lines, "\n"), true
}
