package models

import "time"

// UrgencyWindow is how far ahead of its deadline a task becomes urgent.
const UrgencyWindow = 24 * time.Hour

// Task represents a single unit of work: a free-text description, a priority,
// and an optional deadline. A Task is read-only once constructed.
type Task struct {
	description string
	priority    Priority
	due         *time.Time
}

// NewTask constructs a Task. A nil due means the task has no deadline; a
// non-nil due is copied and normalised to UTC.
func NewTask(description string, priority Priority, due *time.Time) *Task {
	t := &Task{description: description, priority: priority}
	if due != nil {
		d := due.UTC()
		t.due = &d
	}
	return t
}

// Description returns the task description verbatim.
func (t *Task) Description() string { return t.description }

// Priority returns the task priority.
func (t *Task) Priority() Priority { return t.priority }

// Due returns the deadline and whether one is set.
func (t *Task) Due() (time.Time, bool) {
	if t.due == nil {
		return time.Time{}, false
	}
	return *t.due, true
}

// IsUrgent reports whether the task is urgent right now.
func (t *Task) IsUrgent() bool {
	return t.IsUrgentAt(time.Now())
}

// IsUrgentAt reports whether the task is urgent at the given instant: either
// its priority is High, or its deadline falls within UrgencyWindow of now
// (an overdue task is urgent too).
func (t *Task) IsUrgentAt(now time.Time) bool {
	priorityUrgent := t.priority == PriorityHigh

	deadlineUrgent := false
	if t.due != nil {
		deadlineUrgent = !now.Add(UrgencyWindow).Before(*t.due)
	}

	return priorityUrgent || deadlineUrgent
}
