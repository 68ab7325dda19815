package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/valter-silva-au/tasker/internal/core"
	"github.com/valter-silva-au/tasker/pkg/models"
	"gopkg.in/yaml.v3"
)

const noDue = "none"

// taskDocument is the YAML shape of a rendered task.
type taskDocument struct {
	Description string `yaml:"description"`
	Priority    string `yaml:"priority"`
	Due         string `yaml:"due,omitempty"`
	Urgent      bool   `yaml:"urgent"`
}

func renderTask(w io.Writer, task *models.Task, urgent bool, format models.OutputFormat, color bool) error {
	switch format {
	case models.OutputLine, "":
		return renderLine(w, task)
	case models.OutputTable:
		return renderTable(w, task, urgent, color)
	case models.OutputYAML:
		return renderYAML(w, task, urgent)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func dueString(task *models.Task) string {
	due, ok := task.Due()
	if !ok {
		return noDue
	}
	return core.FormatDeadline(due)
}

func renderLine(w io.Writer, task *models.Task) error {
	_, err := fmt.Fprintf(w, "task description: %s %s %s\n",
		task.Description(), task.Priority(), dueString(task))
	return err
}

// renderTable prints one row: urgency marker, priority, description, due.
func renderTable(w io.Writer, task *models.Task, urgent bool, color bool) error {
	marker := " - "
	if urgent {
		marker = "(!)"
		if color {
			r := lipgloss.NewRenderer(w)
			marker = r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render(marker)
		}
	}
	_, err := fmt.Fprintf(w, "%s %-10s %-40s %-10s\n",
		marker, task.Priority(), task.Description(), dueString(task))
	return err
}

func renderYAML(w io.Writer, task *models.Task, urgent bool) error {
	doc := taskDocument{
		Description: task.Description(),
		Priority:    task.Priority().String(),
		Urgent:      urgent,
	}
	if due, ok := task.Due(); ok {
		doc.Due = core.FormatDeadline(due)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding task: %w", err)
	}
	return enc.Close()
}
