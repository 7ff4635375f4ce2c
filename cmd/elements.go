package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Wirasm/axcli/internal/automation"
	"github.com/Wirasm/axcli/internal/output"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List UI elements of a window",
	Long:  "Resolve a window by app name or title and list every element in its accessibility tree with role, title, value, description, bounds, and enabled state.",
	RunE:  runElements,
}

func init() {
	rootCmd.AddCommand(elementsCmd)
	addTargetFlags(elementsCmd)
}

func runElements(cmd *cobra.Command, args []string) error {
	engine, err := automation.New()
	if err != nil {
		return err
	}

	listing, err := engine.Elements(targetFromFlags(cmd))
	if err != nil {
		return err
	}
	return output.Print(listing)
}
