// Package automation orchestrates the click pipeline: permission check,
// window resolution, tree walk, text match, focus, input injection.
// Every entry point that touches the accessibility or input APIs re-checks
// consent, and every stage fails with a typed error instead of advancing; no
// stage is retried.
package automation

import (
	"fmt"
	"strings"
	"time"

	"github.com/Wirasm/axcli/internal/model"
	"github.com/Wirasm/axcli/internal/platform"
)

// Engine drives UI automation against a platform provider. Results are
// best-effort snapshots of live OS state: a window may move or close between
// resolution and click, and that race is accepted, not retried.
type Engine struct {
	p *platform.Provider
}

// New creates an Engine over the current OS's platform provider.
func New() (*Engine, error) {
	p, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return NewWithProvider(p), nil
}

// NewWithProvider creates an Engine over an explicit provider. Tests use
// this with fake backends.
func NewWithProvider(p *platform.Provider) *Engine {
	return &Engine{p: p}
}

// Windows lists all application windows, focused first.
func (e *Engine) Windows(opts platform.ListOptions) ([]model.Window, error) {
	if err := e.p.Permissions.Check(); err != nil {
		return nil, err
	}
	return e.p.Windows.List(opts)
}

// Elements resolves the target window and enumerates its process's
// accessibility tree as a flat element listing.
func (e *Engine) Elements(target platform.Target) (*Listing, error) {
	if err := e.p.Permissions.Check(); err != nil {
		return nil, err
	}
	w, err := e.resolveWindow(target)
	if err != nil {
		return nil, err
	}
	elements, err := e.enumerate(w)
	if err != nil {
		return nil, err
	}
	return &Listing{
		App:      w.App,
		PID:      w.PID,
		Window:   w.Title,
		TS:       time.Now().Unix(),
		Elements: elements,
	}, nil
}

// Find searches the target window's elements for the query text. Passive
// policy: an ambiguous match surfaces the first candidate plus the total
// count as a note, never an error; no match is an error.
func (e *Engine) Find(target platform.Target, query string) (*FindResult, error) {
	if err := e.p.Permissions.Check(); err != nil {
		return nil, err
	}
	if query == "" {
		return nil, fmt.Errorf("query text is required")
	}
	w, err := e.resolveWindow(target)
	if err != nil {
		return nil, err
	}
	elements, err := e.enumerate(w)
	if err != nil {
		return nil, err
	}

	match := model.FindMatches(elements, query)
	if match.Outcome == model.MatchNone {
		return nil, &platform.MatchNotFoundError{Query: query}
	}

	result := &FindResult{
		OK:      true,
		Action:  "find",
		Query:   query,
		App:     w.App,
		Window:  w.Title,
		PID:     w.PID,
		Element: match.Element,
		Total:   match.Count(),
	}
	if match.Outcome == model.MatchAmbiguous {
		result.Note = fmt.Sprintf("%d elements match; showing the first. Refine the query for click targeting", match.Count())
	}
	return result, nil
}

// ClickAt clicks at a window-relative point. The point is converted to
// screen coordinates against the window's current origin, the window is
// focused, and the click is injected.
func (e *Engine) ClickAt(target platform.Target, rel model.Point, button platform.MouseButton, count int) (*ActionResult, error) {
	if err := e.p.Permissions.Check(); err != nil {
		return nil, err
	}
	w, err := e.resolveWindow(target)
	if err != nil {
		return nil, err
	}

	abs := model.ToAbsolute(rel, w.Origin())

	if err := e.p.Windows.Focus(w); err != nil {
		return nil, err
	}
	if err := e.p.Inputter.Click(abs.X, abs.Y, button, count); err != nil {
		return nil, err
	}
	return &ActionResult{
		OK:     true,
		Action: "click",
		X:      abs.X,
		Y:      abs.Y,
		App:    w.App,
		Window: w.Title,
		PID:    w.PID,
	}, nil
}

// ClickByText resolves a single element by query text and clicks its center.
// Unlike Find, both no-match and ambiguous-match are hard failures here:
// acting on the wrong element is strictly worse than not acting.
func (e *Engine) ClickByText(target platform.Target, query string, button platform.MouseButton, count int) (*ActionResult, error) {
	if err := e.p.Permissions.Check(); err != nil {
		return nil, err
	}
	if query == "" {
		return nil, fmt.Errorf("query text is required")
	}
	w, err := e.resolveWindow(target)
	if err != nil {
		return nil, err
	}
	elements, err := e.enumerate(w)
	if err != nil {
		return nil, err
	}

	match := model.FindMatches(elements, query)
	switch match.Outcome {
	case model.MatchNone:
		return nil, &platform.MatchNotFoundError{Query: query}
	case model.MatchAmbiguous:
		return nil, &platform.AmbiguousMatchError{Query: query, Candidates: match.Candidates}
	}

	el := match.Element
	center, ok := el.Center()
	if !ok {
		return nil, &platform.NoPositionError{Query: query, Label: el.Label(), Role: el.Role}
	}

	if err := e.p.Windows.Focus(w); err != nil {
		return nil, err
	}
	if err := e.p.Inputter.Click(center.X, center.Y, button, count); err != nil {
		return nil, err
	}
	return &ActionResult{
		OK:      true,
		Action:  "click",
		X:       center.X,
		Y:       center.Y,
		App:     w.App,
		Window:  w.Title,
		PID:     w.PID,
		Element: el,
	}, nil
}

// Frontmost reports the name and PID of the application that currently owns
// the foreground.
func (e *Engine) Frontmost() (string, int, error) {
	if err := e.p.Permissions.Check(); err != nil {
		return "", 0, err
	}
	return e.p.Windows.Frontmost()
}

// Focus resolves the target window and brings it to the foreground.
func (e *Engine) Focus(target platform.Target) (*model.Window, error) {
	if err := e.p.Permissions.Check(); err != nil {
		return nil, err
	}
	w, err := e.resolveWindow(target)
	if err != nil {
		return nil, err
	}
	if err := e.p.Windows.Focus(w); err != nil {
		return nil, err
	}
	return w, nil
}

// Screenshot captures the target window, or the full screen when the target
// is empty. Targeted capture goes through the accessibility gate because it
// resolves a window; full-screen capture touches no accessibility API, so
// its only gate is the screen-recording consent checked by the capture
// backend itself.
func (e *Engine) Screenshot(target platform.Target, opts platform.ScreenshotOptions) ([]byte, *model.Window, error) {
	var w *model.Window
	if target.Title != "" || target.App != "" {
		if err := e.p.Permissions.Check(); err != nil {
			return nil, nil, err
		}
		var err error
		w, err = e.resolveWindow(target)
		if err != nil {
			return nil, nil, err
		}
		opts.WindowID = w.ID
	}
	data, err := e.p.Screenshotter.Capture(opts)
	if err != nil {
		return nil, nil, err
	}
	return data, w, nil
}

// resolveWindow maps a target to a fresh window snapshot. Title matching is
// case-insensitive substring; app matching is case-insensitive exact with
// the first (focused-first ordered) window winning. The same policy backs
// listing, find, and click-by-text, so text shown by one reliably resolves
// via the others.
func (e *Engine) resolveWindow(target platform.Target) (*model.Window, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	if target.App != "" {
		windows, err := e.p.Windows.List(platform.ListOptions{App: target.App})
		if err != nil {
			return nil, err
		}
		if len(windows) == 0 {
			return nil, &platform.AppNotFoundError{App: target.App}
		}
		return &windows[0], nil
	}

	windows, err := e.p.Windows.List(platform.ListOptions{})
	if err != nil {
		return nil, err
	}
	titleLower := strings.ToLower(target.Title)
	for i := range windows {
		if strings.Contains(strings.ToLower(windows[i].Title), titleLower) {
			return &windows[i], nil
		}
	}
	return nil, &platform.WindowNotFoundError{Title: target.Title}
}

// enumerate walks the accessibility tree of the window's owning process.
func (e *Engine) enumerate(w *model.Window) ([]model.Element, error) {
	if w.PID == 0 {
		return nil, &platform.NoPIDError{Title: w.Title}
	}
	if w.Minimized {
		return nil, &platform.WindowMinimizedError{Title: w.Title, App: w.App}
	}
	return e.p.Walker.Enumerate(w.PID)
}
