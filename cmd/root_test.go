package cmd

import "testing"

func TestRootCommand_PersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	f := flags.Lookup("format")
	if f == nil {
		t.Fatal("expected persistent flag \"format\"")
	}
	if f.DefValue != "yaml" {
		t.Errorf("expected format default %q, got %q", "yaml", f.DefValue)
	}

	if flags.Lookup("pretty") == nil {
		t.Error("expected persistent flag \"pretty\"")
	}
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	want := []string{"windows", "elements", "find", "click", "focus", "screenshot", "mcp"}
	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered on root", name)
		}
	}
}
