package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Wirasm/axcli/internal/model"
)

type sample struct {
	App      string          `yaml:"app,omitempty" json:"app,omitempty"`
	PID      int             `yaml:"pid,omitempty" json:"pid,omitempty"`
	Elements []model.Element `yaml:"elements"      json:"elements"`
}

// capture runs fn with stdout redirected and returns what it printed.
func capture(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	v := sample{
		App: "Notes",
		PID: 42,
		Elements: []model.Element{
			{ID: 0, Role: "btn", Title: "OK", Bounds: &[4]int{10, 20, 100, 30}},
		},
	}

	out := capture(t, func() error { return PrintYAML(v) })

	if strings.Count(out, "\n") <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}

	var decoded sample
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.App != "Notes" {
		t.Errorf("app: got %q, want %q", decoded.App, "Notes")
	}
	if len(decoded.Elements) != 1 {
		t.Errorf("elements: got %d, want 1", len(decoded.Elements))
	}
}

func TestPrintJSON_CompactSingleLine(t *testing.T) {
	v := sample{App: "Notes", PID: 42}

	out := capture(t, func() error { return PrintJSON(v) })

	if strings.Count(strings.TrimRight(out, "\n"), "\n") != 0 {
		t.Errorf("compact JSON should be one line, got:\n%s", out)
	}
}

func TestPrint_RespectsFormat(t *testing.T) {
	prev := OutputFormat
	defer func() { OutputFormat = prev }()

	OutputFormat = FormatJSON
	out := capture(t, func() error { return Print(sample{App: "Notes"}) })
	if !strings.HasPrefix(out, "{") {
		t.Errorf("expected JSON output, got:\n%s", out)
	}

	OutputFormat = FormatYAML
	out = capture(t, func() error { return Print(sample{App: "Notes"}) })
	if strings.HasPrefix(out, "{") {
		t.Errorf("expected YAML output, got:\n%s", out)
	}
}
