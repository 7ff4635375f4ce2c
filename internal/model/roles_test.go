package model

import "testing"

func TestMapRole(t *testing.T) {
	tests := []struct {
		axRole string
		want   string
	}{
		{"AXButton", "btn"},
		{"AXStaticText", "txt"},
		{"AXTextField", "input"},
		{"AXTextArea", "input"},
		{"AXWindow", "window"},
		{"AXSomethingUnknown", "other"},
		{"", "other"},
	}
	for _, tt := range tests {
		if got := MapRole(tt.axRole); got != tt.want {
			t.Errorf("MapRole(%q): expected %q, got %q", tt.axRole, tt.want, got)
		}
	}
}
