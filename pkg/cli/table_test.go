package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableOutput(t *testing.T) {
	var buf bytes.Buffer

	tbl := NewTableTo(&buf, "PK", "NAME")
	tbl.Row("abc123", "office-router")
	tbl.Row("def456", "laptop")
	tbl.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "PK") || !strings.Contains(lines[0], "NAME") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "--") {
		t.Errorf("divider = %q", lines[1])
	}
	if !strings.Contains(lines[2], "office-router") || !strings.Contains(lines[3], "laptop") {
		t.Errorf("rows = %q", lines[2:])
	}
}

func TestEmptyTablePrintsNothing(t *testing.T) {
	var buf bytes.Buffer

	tbl := NewTableTo(&buf, "PK", "NAME")
	tbl.Flush()

	if buf.Len() != 0 {
		t.Errorf("empty table should print nothing, got %q", buf.String())
	}
}

func TestTablePrefix(t *testing.T) {
	var buf bytes.Buffer

	tbl := NewTableTo(&buf, "ID").WithPrefix("  ")
	tbl.Row("x1")
	tbl.Flush()

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %q should be indented", line)
		}
	}
}
