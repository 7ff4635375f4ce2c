package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wirasm/axcli/internal/output"
	"github.com/Wirasm/axcli/internal/platform"
	"github.com/Wirasm/axcli/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "axcli",
	Short: "Inspect and click macOS UI elements",
	Long:  "A CLI that resolves application windows, walks their accessibility trees, and clicks UI elements by coordinates or text.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if platform.RequestPermissionsFunc != nil {
			platform.RequestPermissionsFunc()
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}

// targetFromFlags builds a platform.Target from the standard --app/--window
// flags. Validation happens in the engine.
func targetFromFlags(cmd *cobra.Command) platform.Target {
	appName, _ := cmd.Flags().GetString("app")
	window, _ := cmd.Flags().GetString("window")
	return platform.Target{App: appName, Title: window}
}

// addTargetFlags adds the --app/--window targeting flags to a command.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("app", "", "Target the first window of this application (case-insensitive name)")
	cmd.Flags().String("window", "", "Target the window whose title contains this text (case-insensitive)")
}
