package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/valter-silva-au/tasker/internal/cli"
	"github.com/valter-silva-au/tasker/internal/core"
	"github.com/valter-silva-au/tasker/pkg/models"
)

func restoreCLI(t *testing.T) {
	t.Helper()
	origConfig, origClock := cli.Config, cli.Clock
	t.Cleanup(func() {
		cli.Config, cli.Clock = origConfig, origClock
	})
}

func TestNewApp_Defaults(t *testing.T) {
	restoreCLI(t)

	app, err := NewApp(t.TempDir())
	if err != nil {
		t.Fatalf("NewApp() unexpected error: %v", err)
	}
	if app.ConfigMgr == nil || app.Clock == nil || app.Config == nil {
		t.Fatal("expected all services to be wired")
	}
	if app.Config.OutputFormat != models.OutputLine {
		t.Errorf("OutputFormat = %q, want line", app.Config.OutputFormat)
	}
	if cli.Config != app.Config {
		t.Error("expected cli.Config to be set from app")
	}
	if cli.Clock == nil {
		t.Error("expected cli.Clock to be set from app")
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	restoreCLI(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, core.ConfigFileName), []byte("output:\n  format: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewApp(dir)
	var cfgErr *core.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("NewApp() error = %v, want *core.ConfigError", err)
	}
	if cli.ExitCode(err) != cli.ExitConfigError {
		t.Errorf("ExitCode = %d, want %d", cli.ExitCode(err), cli.ExitConfigError)
	}
}

func TestFindConfigDir(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	if got := findConfigDir(nested); got != nested {
		t.Errorf("findConfigDir() without config = %q, want %q", got, nested)
	}

	if err := os.WriteFile(filepath.Join(root, core.ConfigFileName), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := findConfigDir(nested); got != root {
		t.Errorf("findConfigDir() = %q, want %q", got, root)
	}
}

func TestConfigSearchPaths(t *testing.T) {
	paths := ConfigSearchPaths()
	if len(paths) == 0 {
		t.Fatal("expected at least one search path")
	}
}
