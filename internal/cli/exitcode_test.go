package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/valter-silva-au/tasker/internal/core"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"missing description", fmt.Errorf("adding task: %w", core.ErrMissingDescription), ExitUserError},
		{"bad deadline", &core.InvalidDeadlineFormatError{Text: "x", Layout: core.DeadlineLayout}, ExitUserError},
		{"config", fmt.Errorf("init: %w", &core.ConfigError{Err: errors.New("bad yaml")}), ExitConfigError},
		{"other", errors.New("boom"), ExitUserError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
