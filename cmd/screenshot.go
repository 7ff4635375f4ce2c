package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/Wirasm/axcli/internal/automation"
	"github.com/Wirasm/axcli/internal/output"
	"github.com/Wirasm/axcli/internal/platform"
)

// ScreenshotResult is the output of a successful capture.
type ScreenshotResult struct {
	OK     bool   `yaml:"ok"               json:"ok"`
	Action string `yaml:"action"           json:"action"`
	File   string `yaml:"file"             json:"file"`
	App    string `yaml:"app,omitempty"    json:"app,omitempty"`
	Window string `yaml:"window,omitempty" json:"window,omitempty"`
	Width  int    `yaml:"width"            json:"width"`
	Height int    `yaml:"height"           json:"height"`
}

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a window or the full screen",
	Long:  "Capture a screenshot of the targeted window (or the full screen when no target is given) and write it to a file, optionally downscaled.",
	RunE:  runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	addTargetFlags(screenshotCmd)
	screenshotCmd.Flags().String("output", "screenshot.png", "Output file path")
	screenshotCmd.Flags().String("image-format", "png", "Image format: png or jpg")
	screenshotCmd.Flags().Int("quality", 80, "JPEG quality 1-100")
	screenshotCmd.Flags().Float64("scale", 1.0, "Scale factor 0.1-1.0")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("image-format")
	quality, _ := cmd.Flags().GetInt("quality")
	scale, _ := cmd.Flags().GetFloat64("scale")

	if format != "png" && format != "jpg" && format != "jpeg" {
		return fmt.Errorf("unsupported image format: %s (use png or jpg)", format)
	}
	if scale <= 0 || scale > 1.0 {
		scale = 1.0
	}
	if quality <= 0 || quality > 100 {
		quality = 80
	}

	engine, err := automation.New()
	if err != nil {
		return err
	}

	data, w, err := engine.Screenshot(targetFromFlags(cmd), platform.ScreenshotOptions{})
	if err != nil {
		return err
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode capture: %w", err)
	}

	if scale < 1.0 {
		img = scaleImage(img, scale)
	}

	var buf bytes.Buffer
	switch format {
	case "jpg", "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	result := ScreenshotResult{
		OK:     true,
		Action: "screenshot",
		File:   outPath,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}
	if w != nil {
		result.App = w.App
		result.Window = w.Title
	}
	return output.Print(result)
}

// scaleImage downscales img by the given factor using bilinear sampling.
func scaleImage(img image.Image, scale float64) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(b.Dx())*scale), int(float64(b.Dy())*scale)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
