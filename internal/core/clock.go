package core

import (
	"time"

	"github.com/valter-silva-au/tasker/pkg/models"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// IsUrgent evaluates the task's urgency against the given clock. The clock is
// read on every call.
func IsUrgent(task *models.Task, clock Clock) bool {
	if clock == nil {
		clock = SystemClock()
	}
	return task.IsUrgentAt(clock.Now())
}
