package core

import (
	"errors"
	"fmt"
)

// ErrMissingDescription is returned by TaskBuilder.Build when no description
// was supplied.
var ErrMissingDescription = errors.New("task description is required")

// InvalidDeadlineFormatError is returned when deadline text does not match
// DeadlineLayout.
type InvalidDeadlineFormatError struct {
	Text   string
	Layout string
	Err    error
}

func (e *InvalidDeadlineFormatError) Error() string {
	return fmt.Sprintf("invalid deadline %q: expected RFC 3339 (%s)", e.Text, e.Layout)
}

func (e *InvalidDeadlineFormatError) Unwrap() error { return e.Err }

// ConfigError wraps failures to read or validate .taskerrc.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }
