package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wirasm/axcli/internal/automation"
	"github.com/Wirasm/axcli/internal/output"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find an element by text",
	Long:  "Search a window's elements for ones whose title, value, or description contains the given text (case-insensitive substring). When several elements match, the first is shown together with the total count.",
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	addTargetFlags(findCmd)
	findCmd.Flags().String("text", "", "Text to search for")
}

func runFind(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	if text == "" {
		return fmt.Errorf("--text is required")
	}

	engine, err := automation.New()
	if err != nil {
		return err
	}

	result, err := engine.Find(targetFromFlags(cmd), text)
	if err != nil {
		return err
	}
	return output.Print(result)
}
