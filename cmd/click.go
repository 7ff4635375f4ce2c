package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wirasm/axcli/internal/automation"
	"github.com/Wirasm/axcli/internal/model"
	"github.com/Wirasm/axcli/internal/output"
	"github.com/Wirasm/axcli/internal/platform"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click an element or a point in a window",
	Long:  "Click inside a window, either at window-relative coordinates (--x/--y) or on the element whose text matches --text. Text clicks require exactly one matching element; ambiguous matches fail rather than guessing.",
	RunE:  runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	addTargetFlags(clickCmd)
	clickCmd.Flags().Int("x", 0, "Window-relative X coordinate")
	clickCmd.Flags().Int("y", 0, "Window-relative Y coordinate")
	clickCmd.Flags().String("text", "", "Click the single element matching this text")
	clickCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
	clickCmd.Flags().Bool("double", false, "Double-click")
	clickCmd.Flags().Int("count", 1, "Click count 1-3 (triple-click needs 3)")
}

func runClick(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	buttonStr, _ := cmd.Flags().GetString("button")
	double, _ := cmd.Flags().GetBool("double")

	button, err := platform.ParseMouseButton(buttonStr)
	if err != nil {
		return err
	}
	count := 1
	if double {
		count = 2
	}
	if cmd.Flags().Changed("count") {
		if double {
			return fmt.Errorf("use --double or --count, not both")
		}
		count, _ = cmd.Flags().GetInt("count")
		if count < 1 || count > 3 {
			return fmt.Errorf("click count must be 1-3, got %d", count)
		}
	}

	engine, err := automation.New()
	if err != nil {
		return err
	}
	target := targetFromFlags(cmd)

	var result *automation.ActionResult
	if text != "" {
		if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
			return fmt.Errorf("use --text or --x/--y, not both")
		}
		result, err = engine.ClickByText(target, text, button, count)
	} else {
		if !cmd.Flags().Changed("x") || !cmd.Flags().Changed("y") {
			return fmt.Errorf("specify --text or both --x and --y")
		}
		x, _ := cmd.Flags().GetInt("x")
		y, _ := cmd.Flags().GetInt("y")
		result, err = engine.ClickAt(target, model.Point{X: x, Y: y}, button, count)
	}
	if err != nil {
		return err
	}
	return output.Print(result)
}
