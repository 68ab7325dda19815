package cli

import (
	"errors"

	"github.com/valter-silva-au/tasker/internal/core"
)

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitConfigError = 2
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr *core.ConfigError
	if errors.As(err, &cfgErr) {
		return ExitConfigError
	}
	return ExitUserError
}
