// Package internal provides the App struct that wires the tasker components
// together and hands them to the CLI layer.
package internal

import (
	"os"
	"path/filepath"

	"github.com/valter-silva-au/tasker/internal/cli"
	"github.com/valter-silva-au/tasker/internal/core"
	"github.com/valter-silva-au/tasker/pkg/models"
)

// App holds the service dependencies for tasker.
type App struct {
	ConfigMgr core.ConfigurationManager
	Config    *models.Config
	Clock     core.Clock
}

// NewApp loads configuration from searchPaths and wires the CLI layer.
// A missing .taskerrc is not an error; an unreadable or invalid one is.
func NewApp(searchPaths ...string) (*App, error) {
	app := &App{
		ConfigMgr: core.NewConfigurationManager(searchPaths...),
		Clock:     core.SystemClock(),
	}

	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	cli.Config = app.Config
	cli.Clock = app.Clock

	return app, nil
}

// ConfigSearchPaths returns the directories searched for .taskerrc: the
// nearest ancestor of the working directory that contains one (or the
// working directory itself), then the user's home directory.
func ConfigSearchPaths() []string {
	var paths []string
	if dir, err := os.Getwd(); err == nil {
		paths = append(paths, findConfigDir(dir))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	return paths
}

// findConfigDir walks up from start looking for .taskerrc and falls back to
// start when none is found.
func findConfigDir(start string) string {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, core.ConfigFileName)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}
