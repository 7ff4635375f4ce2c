package server

import "testing"

func TestParamHelpers(t *testing.T) {
	params := map[string]interface{}{
		"app":    "Notes",
		"x":      float64(42),
		"double": true,
		"bad":    []int{1},
	}

	if got := stringParam(params, "app", ""); got != "Notes" {
		t.Errorf("expected %q, got %q", "Notes", got)
	}
	if got := stringParam(params, "missing", "def"); got != "def" {
		t.Errorf("expected default, got %q", got)
	}
	if got := intParam(params, "x", 0); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := intParam(params, "missing", 7); got != 7 {
		t.Errorf("expected default 7, got %d", got)
	}
	if got := boolParam(params, "double", false); !got {
		t.Error("expected true")
	}
	if got := stringParam(params, "bad", "def"); got != "def" {
		t.Errorf("wrong-typed value should fall back to default, got %q", got)
	}
}

func TestTargetParam(t *testing.T) {
	target := targetParam(map[string]interface{}{"window": "My Note"})
	if target.Title != "My Note" || target.App != "" {
		t.Errorf("unexpected target: %+v", target)
	}
}
