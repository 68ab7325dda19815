package models

import (
	"fmt"
	"strings"
)

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
)

// InvalidPriorityError is returned by ParsePriority when the input does not
// name one of the known priorities.
type InvalidPriorityError struct {
	Text string
}

func (e *InvalidPriorityError) Error() string {
	return fmt.Sprintf("the value %q cannot be parsed as a priority", e.Text)
}

// DefaultPriority returns the priority used when none is supplied.
func DefaultPriority() Priority {
	return PriorityNormal
}

// ParsePriority matches text case-insensitively against "low", "normal" and
// "high". It never falls back to a default; callers that want lenient
// parsing must handle the error themselves.
func ParsePriority(text string) (Priority, error) {
	switch strings.ToLower(text) {
	case "low":
		return PriorityLow, nil
	case "normal":
		return PriorityNormal, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", &InvalidPriorityError{Text: text}
}

// String returns the display name of the priority.
func (p Priority) String() string {
	return string(p)
}
