package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/tasker/internal/core"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var logLevelFlag string

var rootCmd = &cobra.Command{
	Use:   "tasker",
	Short: "Manage your tasks",
	Long: `tasker builds a single task from a description, an optional priority
and an optional deadline, reports whether it is urgent, and prints it.

A task is urgent when its priority is high or its deadline is less than
24 hours away (or already past). Nothing is stored between runs.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tasker %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

// setupLogger points the package logger at the command's stderr, at the level
// given by --log-level or, failing that, the configured log.level.
func setupLogger(cmd *cobra.Command, args []string) error {
	name := logLevelFlag
	if name == "" {
		name = currentConfig().LogLevel
	}
	level, err := core.ParseLogLevel(name)
	if err != nil {
		return err
	}
	Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	Logger.Debug("logger configured", "level", level.String())
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level for diagnostics on stderr (debug, info, warn, error)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
