package cmd

import "testing"

func TestClickCommand_Flags(t *testing.T) {
	flags := clickCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"app", "string"},
		{"window", "string"},
		{"x", "int"},
		{"y", "int"},
		{"text", "string"},
		{"button", "string"},
		{"double", "bool"},
		{"count", "int"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestClickCommand_ButtonDefault(t *testing.T) {
	f := clickCmd.Flags().Lookup("button")
	if f == nil {
		t.Fatal("button flag not found")
	}
	if f.DefValue != "left" {
		t.Errorf("expected button default %q, got %q", "left", f.DefValue)
	}
}

func TestClickCommand_CountDefault(t *testing.T) {
	f := clickCmd.Flags().Lookup("count")
	if f == nil {
		t.Fatal("count flag not found")
	}
	if f.DefValue != "1" {
		t.Errorf("expected count default %q, got %q", "1", f.DefValue)
	}
}
