package progress

import (
	"bytes"
	"testing"
	"time"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	clock := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)
	r := &CIReporter{Out: &buf, Now: func() time.Time {
		clock = clock.Add(250 * time.Millisecond)
		return clock
	}}

	r.Start(2)
	r.Update(1, "name")
	r.Update(2, "year")
	r.Finish()

	want := "Rendering 2 placeholders\n[1/2] name\n[2/2] year\nRender complete in 250ms\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter().(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}

func TestTerminalReporterBeforeStart(t *testing.T) {
	// Update and Finish before Start must not panic.
	r := &TerminalReporter{}
	r.Update(1, "x")
	r.Finish()
}
