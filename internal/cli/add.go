package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/tasker/internal/core"
	"github.com/valter-silva-au/tasker/pkg/models"
)

var (
	addPriorityFlag string
	addDueFlag      string
	addFormatFlag   string
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Create a task and print it",
	Long: `Create a task from a description and print it.

The priority is one of low, normal or high (case-insensitive). An unknown
priority falls back to the default with a warning. The deadline must be an
RFC 3339 timestamp such as 2024-07-08T09:10:11Z and is converted to UTC; any
other format is an error.

Examples:
  tasker add "write release notes"
  tasker add "renew certificate" --priority high --due 2024-07-08T09:10:11Z
  tasker add "water plants" --format table`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()

	format := cfg.OutputFormat
	if addFormatFlag != "" {
		f, err := core.ParseOutputFormat(addFormatFlag)
		if err != nil {
			return err
		}
		format = f
	}

	defaultPriority, err := models.ParsePriority(cfg.DefaultPriority)
	if err != nil {
		defaultPriority = models.DefaultPriority()
	}

	b := core.NewTaskBuilder(core.BuilderOpts{
		DefaultPriority: defaultPriority,
		Logger:          Logger,
	}).Description(args[0])
	if addPriorityFlag != "" {
		b.Priority(addPriorityFlag)
	}
	if addDueFlag != "" {
		b.Deadline(addDueFlag)
	}

	task, err := b.Build()
	if err != nil {
		return fmt.Errorf("adding task: %w", err)
	}

	urgent := core.IsUrgent(task, currentClock())
	Logger.Debug("task built", "priority", task.Priority().String(), "urgent", urgent)

	return renderTask(cmd.OutOrStdout(), task, urgent, format, cfg.Color)
}

func init() {
	addCmd.Flags().StringVarP(&addPriorityFlag, "priority", "p", "", "Task priority (low, normal, high)")
	addCmd.Flags().StringVarP(&addDueFlag, "due", "d", "", "Deadline as an RFC 3339 timestamp, e.g. 2024-07-08T09:10:11Z")
	addCmd.Flags().StringVarP(&addFormatFlag, "format", "f", "", "Output format (line, table, yaml)")
	_ = addCmd.RegisterFlagCompletionFunc("priority", cobra.FixedCompletions(
		[]string{"low", "normal", "high"}, cobra.ShellCompDirectiveNoFileComp))
	_ = addCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"line", "table", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	rootCmd.AddCommand(addCmd)
}
