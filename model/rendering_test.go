package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}

	buf := NewColorBuffer(3, 2)
	buf.Fill(1, 1, 1)
	buf.Set(1, 0, 0, 0.5, 1)
	r.Display(buf)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "\x1b[48;2;0;128;255m") {
		t.Fatalf("first row lacks the cell color: %q", lines[0])
	}
	if got := strings.Count(lines[1], "\x1b[48;2;255;255;255m"); got != 3 {
		t.Fatalf("second row has %d white cells, want 3", got)
	}
	if !strings.HasSuffix(lines[1], colorReset) {
		t.Fatalf("row not reset: %q", lines[1])
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}
	r.Clear()
	r.Clear()
	if got := out.String(); got != clearScreen+clearScreen {
		t.Fatalf("Clear wrote %q", got)
	}
}
