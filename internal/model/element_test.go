package model

import (
	"encoding/json"
	"testing"
)

func TestElement_JSONKeys(t *testing.T) {
	el := Element{
		ID:     1,
		Role:   "btn",
		Title:  "OK",
		Bounds: &[4]int{10, 20, 100, 30},
	}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	// Must have compact keys
	for _, key := range []string{"i", "r", "t", "b"} {
		if _, ok := m[key]; !ok {
			t.Errorf("expected key %q in JSON output", key)
		}
	}
	// Must NOT have verbose keys
	for _, key := range []string{"id", "role", "title", "bounds"} {
		if _, ok := m[key]; ok {
			t.Errorf("unexpected verbose key %q in JSON output", key)
		}
	}
}

func TestElement_OmitEmpty(t *testing.T) {
	el := Element{ID: 1, Role: "btn"}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"t", "v", "d", "b", "e"} {
		if _, ok := m[key]; ok {
			t.Errorf("empty attribute %q should be omitted", key)
		}
	}
}

func TestElement_Center(t *testing.T) {
	el := Element{Bounds: &[4]int{100, 200, 80, 40}}
	center, ok := el.Center()
	if !ok {
		t.Fatal("expected a center for an element with bounds")
	}
	if center != (Point{X: 140, Y: 220}) {
		t.Errorf("expected center (140,220), got %v", center)
	}
}

func TestElement_CenterWithoutBounds(t *testing.T) {
	el := Element{Title: "Ghost"}
	if _, ok := el.Center(); ok {
		t.Error("element without bounds must not report a center")
	}
}

func TestElement_Label(t *testing.T) {
	tests := []struct {
		el   Element
		want string
	}{
		{Element{Title: "OK", Description: "confirm", Value: "v"}, "OK"},
		{Element{Description: "confirm", Value: "v"}, "confirm"},
		{Element{Value: "v"}, "v"},
		{Element{}, ""},
	}
	for _, tt := range tests {
		if got := tt.el.Label(); got != tt.want {
			t.Errorf("Label(%+v): expected %q, got %q", tt.el, tt.want, got)
		}
	}
}
