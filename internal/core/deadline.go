package core

import "time"

// DeadlineLayout is the only accepted deadline format.
const DeadlineLayout = time.RFC3339

// ParseDeadline parses text with DeadlineLayout and returns the instant in UTC.
func ParseDeadline(text string) (time.Time, error) {
	t, err := time.Parse(DeadlineLayout, text)
	if err != nil {
		return time.Time{}, &InvalidDeadlineFormatError{Text: text, Layout: DeadlineLayout, Err: err}
	}
	return t.UTC(), nil
}

// FormatDeadline renders a deadline the way ParseDeadline accepts it.
func FormatDeadline(t time.Time) string {
	return t.UTC().Format(DeadlineLayout)
}
