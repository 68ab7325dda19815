package core

import (
	"io"
	"log/slog"
	"time"

	"github.com/valter-silva-au/tasker/pkg/models"
)

// BuilderOpts configures a TaskBuilder. The zero value is usable.
type BuilderOpts struct {
	// DefaultPriority replaces models.DefaultPriority when non-empty.
	DefaultPriority models.Priority
	// Logger receives the warning emitted for unparsable priorities.
	Logger *slog.Logger
}

// TaskBuilder accumulates task fields in any order and validates them once in
// Build. Setters return the builder so calls can be chained.
type TaskBuilder struct {
	description *string
	priority    *models.Priority
	due         *time.Time
	dueErr      error

	defaultPriority models.Priority
	logger          *slog.Logger
}

// NewTaskBuilder creates an empty TaskBuilder.
func NewTaskBuilder(opts BuilderOpts) *TaskBuilder {
	b := &TaskBuilder{
		defaultPriority: opts.DefaultPriority,
		logger:          opts.Logger,
	}
	if b.defaultPriority == "" {
		b.defaultPriority = models.DefaultPriority()
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return b
}

// Description stores the description verbatim. Empty text is accepted.
func (b *TaskBuilder) Description(text string) *TaskBuilder {
	b.description = &text
	return b
}

// Priority parses text as a priority. Unparsable text is replaced by the
// builder's default priority and logged as a warning; it never fails Build.
func (b *TaskBuilder) Priority(text string) *TaskBuilder {
	p, err := models.ParsePriority(text)
	if err != nil {
		b.logger.Warn("invalid priority, using default",
			"value", text, "default", b.defaultPriority.String(), "error", err)
		p = b.defaultPriority
	}
	b.priority = &p
	return b
}

// Deadline parses text with DeadlineLayout. A parse failure is kept and
// returned by Build, so no task is produced from a bad deadline.
func (b *TaskBuilder) Deadline(text string) *TaskBuilder {
	due, err := ParseDeadline(text)
	if err != nil {
		b.due = nil
		b.dueErr = err
		return b
	}
	b.due = &due
	b.dueErr = nil
	return b
}

// Build validates the accumulated fields and returns the finished task.
func (b *TaskBuilder) Build() (*models.Task, error) {
	if b.dueErr != nil {
		return nil, b.dueErr
	}
	if b.description == nil {
		return nil, ErrMissingDescription
	}
	priority := b.defaultPriority
	if b.priority != nil {
		priority = *b.priority
	}
	return models.NewTask(*b.description, priority, b.due), nil
}
