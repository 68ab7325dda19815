package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/valter-silva-au/tasker/pkg/models"
)

func TestRenderLine(t *testing.T) {
	due := time.Date(2014, 7, 8, 9, 10, 11, 0, time.UTC)
	var buf bytes.Buffer
	if err := renderLine(&buf, models.NewTask("desc", models.PriorityHigh, &due)); err != nil {
		t.Fatalf("renderLine() error: %v", err)
	}
	if got, want := buf.String(), "task description: desc High 2014-07-08T09:10:11Z\n"; got != want {
		t.Errorf("renderLine() = %q, want %q", got, want)
	}
}

func TestRenderTable_Columns(t *testing.T) {
	var buf bytes.Buffer
	if err := renderTable(&buf, models.NewTask("desc", models.PriorityLow, nil), false, true); err != nil {
		t.Fatalf("renderTable() error: %v", err)
	}
	line := strings.TrimRight(buf.String(), "\n")
	// marker(3) + space + priority(10) + space + description(40) + space + due
	if !strings.HasPrefix(line, " -  Low        desc") {
		t.Errorf("renderTable() = %q", line)
	}
	if !strings.HasSuffix(strings.TrimRight(line, " "), "none") {
		t.Errorf("renderTable() = %q, want trailing none", line)
	}
}

func TestRenderTask_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := renderTask(&buf, models.NewTask("x", models.PriorityLow, nil), false, "csv", false); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRenderYAML_OmitsMissingDue(t *testing.T) {
	var buf bytes.Buffer
	if err := renderYAML(&buf, models.NewTask("x", models.PriorityNormal, nil), false); err != nil {
		t.Fatalf("renderYAML() error: %v", err)
	}
	if strings.Contains(buf.String(), "due:") {
		t.Errorf("renderYAML() = %q, want no due key", buf.String())
	}
}
