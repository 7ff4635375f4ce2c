package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Wirasm/axcli/internal/automation"
	"github.com/Wirasm/axcli/internal/output"
)

// FocusResult is the output of a successful focus.
type FocusResult struct {
	OK     bool   `yaml:"ok"               json:"ok"`
	Action string `yaml:"action"           json:"action"`
	App    string `yaml:"app,omitempty"    json:"app,omitempty"`
	Window string `yaml:"window,omitempty" json:"window,omitempty"`
	PID    int    `yaml:"pid,omitempty"    json:"pid,omitempty"`
}

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Bring a window to the foreground",
	Long:  "Focus a window by application name or window title.",
	RunE:  runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	addTargetFlags(focusCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	engine, err := automation.New()
	if err != nil {
		return err
	}

	w, err := engine.Focus(targetFromFlags(cmd))
	if err != nil {
		return err
	}

	return output.Print(FocusResult{
		OK:     true,
		Action: "focus",
		App:    w.App,
		Window: w.Title,
		PID:    w.PID,
	})
}
