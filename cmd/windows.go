package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Wirasm/axcli/internal/automation"
	"github.com/Wirasm/axcli/internal/output"
	"github.com/Wirasm/axcli/internal/platform"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List open windows and applications",
	Long:  "List open windows with their app name, title, PID, bounds, and minimized state. Use --apps to aggregate to unique applications, or --frontmost for just the foreground application.",
	RunE:  runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().Bool("apps", false, "List unique applications instead of windows")
	windowsCmd.Flags().Bool("frontmost", false, "Show only the frontmost application")
	windowsCmd.Flags().Int("pid", 0, "Filter windows by PID")
	windowsCmd.Flags().String("app", "", "Filter windows by app name")
}

// appEntry is the output row for --apps mode.
type appEntry struct {
	App string `yaml:"app" json:"app"`
	PID int    `yaml:"pid" json:"pid"`
}

func runWindows(cmd *cobra.Command, args []string) error {
	engine, err := automation.New()
	if err != nil {
		return err
	}

	apps, _ := cmd.Flags().GetBool("apps")
	frontmost, _ := cmd.Flags().GetBool("frontmost")
	pid, _ := cmd.Flags().GetInt("pid")
	appName, _ := cmd.Flags().GetString("app")

	if frontmost {
		name, frontPid, err := engine.Frontmost()
		if err != nil {
			return err
		}
		return output.Print(appEntry{App: name, PID: frontPid})
	}

	windows, err := engine.Windows(platform.ListOptions{App: appName, PID: pid})
	if err != nil {
		return err
	}

	if apps {
		seen := make(map[int]bool)
		entries := []appEntry{}
		for _, w := range windows {
			if seen[w.PID] {
				continue
			}
			seen[w.PID] = true
			entries = append(entries, appEntry{App: w.App, PID: w.PID})
		}
		return output.Print(entries)
	}

	return output.Print(windows)
}
