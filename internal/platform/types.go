package platform

import (
	"fmt"
	"strings"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// ParseMouseButton converts a string flag value to MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "left":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	case "middle":
		return MouseMiddle, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left, right, or middle)", s)
	}
}

// Target identifies the window to operate on: either by window title
// (case-insensitive substring, the same policy everywhere) or by owning
// application name (case-insensitive exact, first window wins). Exactly one
// field must be set.
type Target struct {
	Title string
	App   string
}

// Validate checks that exactly one of Title and App is set.
func (t Target) Validate() error {
	if t.Title == "" && t.App == "" {
		return fmt.Errorf("no target specified: use --app or --window")
	}
	if t.Title != "" && t.App != "" {
		return fmt.Errorf("ambiguous target: use --app or --window, not both")
	}
	return nil
}

func (t Target) String() string {
	if t.App != "" {
		return fmt.Sprintf("app %q", t.App)
	}
	return fmt.Sprintf("window %q", t.Title)
}

// ListOptions controls window listing.
type ListOptions struct {
	App string // Filter by application name (case-insensitive exact)
	PID int    // Filter by process ID (0 = unset)
}

// ScreenshotOptions configures what to capture. Scaling and format
// conversion happen in Go after capture.
type ScreenshotOptions struct {
	WindowID int // Window to capture (0 = full screen)
}
