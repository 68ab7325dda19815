package cli

import (
	"io"
	"log/slog"

	"github.com/valter-silva-au/tasker/internal/core"
	"github.com/valter-silva-au/tasker/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	Config *models.Config
	Clock  core.Clock
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func currentConfig() *models.Config {
	if Config == nil {
		return core.DefaultConfig()
	}
	return Config
}

func currentClock() core.Clock {
	if Clock == nil {
		return core.SystemClock()
	}
	return Clock
}
