package list

import (
	"bytes"
	"strings"
	"testing"
)

func TestRender_TableHasAllPlanets(t *testing.T) {
	var buf bytes.Buffer
	if err := render(&buf, "table"); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected header plus 8 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "INDEX") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Mercury") || !strings.Contains(lines[8], "Neptune") {
		t.Fatalf("unexpected row order:\n%s", buf.String())
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := render(&buf, "json"); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "[\n  {\n    \"index\": 0,\n    \"name\": \"Mercury\"\n  },") {
		t.Fatalf("unexpected JSON head:\n%s", out)
	}
	if !strings.Contains(out, "\"name\": \"Neptune\"") {
		t.Fatalf("missing Neptune:\n%s", out)
	}
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := render(&buf, "yaml"); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "- index: 0\n  name: Mercury\n") {
		t.Fatalf("unexpected YAML head:\n%s", out)
	}
	if !strings.Contains(out, "- index: 7\n  name: Neptune\n") {
		t.Fatalf("missing Neptune:\n%s", out)
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := render(&buf, "xml")
	if err == nil {
		t.Fatalf("expected error")
	}
	want := "unsupported format: xml (supported: table, json, yaml)"
	if err.Error() != want {
		t.Fatalf("unexpected error\nwant: %s\n got: %s", want, err.Error())
	}
}
