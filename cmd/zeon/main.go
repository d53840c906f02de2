package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zeon-dev/zeon/internal/cli"
	"github.com/zeon-dev/zeon/internal/cli/wizard"
	"github.com/zeon-dev/zeon/internal/compose"
)

func main() {
	if err := cli.Execute(); err != nil {
		// A declined confirmation is not a failure of the tool; it gets
		// its own exit code so scripts can tell the two apart.
		if errors.Is(err, compose.ErrCancelled) || errors.Is(err, wizard.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Configuration cancelled.")
			os.Exit(2)
		}
		os.Exit(1)
	}
}
