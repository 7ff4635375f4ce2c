package platform

import "github.com/Wirasm/axcli/internal/model"

// PermissionGate checks OS-granted automation consent. Check is re-evaluated
// on every call site that touches accessibility or input APIs, never cached,
// because the user can revoke consent in System Settings at any time.
type PermissionGate interface {
	Check() error
}

// WindowResolver talks to the OS window server.
type WindowResolver interface {
	// List returns a fresh snapshot of all on-record windows, optionally
	// filtered. Focused windows sort first.
	List(opts ListOptions) ([]model.Window, error)

	// Focus raises the window and activates its owning application.
	// Required before any click so the target is frontmost and responsive.
	Focus(w *model.Window) error

	// Frontmost returns the name and PID of the frontmost application.
	Frontmost() (string, int, error)
}

// TreeWalker enumerates the accessibility object graph of a process.
type TreeWalker interface {
	// Enumerate returns a flat list of element records for the process.
	// Partial attribute failures degrade to absent values; only failure to
	// reach the process's root object or window collection is fatal.
	Enumerate(pid int) ([]model.Element, error)
}

// Inputter synthesizes mouse input at screen-absolute coordinates.
type Inputter interface {
	Click(x, y int, button MouseButton, count int) error
}

// Screenshotter captures window or screen images.
type Screenshotter interface {
	// Capture returns PNG-encoded image bytes at full resolution; callers
	// handle scaling and re-encoding.
	Capture(opts ScreenshotOptions) ([]byte, error)
}
