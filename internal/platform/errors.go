package platform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Wirasm/axcli/internal/model"
)

// ErrPermissionDenied is returned whenever the process lacks accessibility
// consent. The message carries the remediation steps verbatim so the CLI and
// MCP layers can surface it without extra context.
var ErrPermissionDenied = errors.New(
	"accessibility permission required\n\n" +
		"Grant permission at: System Settings > Privacy & Security > Accessibility\n" +
		"Add your terminal app (e.g. Terminal.app, iTerm2, or the IDE running this command).\n" +
		"Then restart the terminal and try again.")

// WindowNotFoundError reports that no window title matched the target.
type WindowNotFoundError struct {
	Title string
}

func (e *WindowNotFoundError) Error() string {
	return fmt.Sprintf("no window found matching title %q", e.Title)
}

// AppNotFoundError reports that the named application owns no windows.
type AppNotFoundError struct {
	App string
}

func (e *AppNotFoundError) Error() string {
	return fmt.Sprintf("no windows found for app %q", e.App)
}

// WindowLookupError reports that the OS window enumeration itself failed.
type WindowLookupError struct {
	Reason string
}

func (e *WindowLookupError) Error() string {
	return fmt.Sprintf("failed to enumerate windows: %s", e.Reason)
}

// WindowMinimizedError reports that the resolved window is minimized and
// cannot be queried or clicked.
type WindowMinimizedError struct {
	Title string
	App   string
}

func (e *WindowMinimizedError) Error() string {
	return fmt.Sprintf("window %q (app %q) is minimized; restore it first", e.Title, e.App)
}

// FocusError reports that raising the target window failed. Focus failure is
// fatal to a click and is never retried.
type FocusError struct {
	App    string
	PID    int
	Reason string
}

func (e *FocusError) Error() string {
	return fmt.Sprintf("failed to focus app %q (pid %d): %s", e.App, e.PID, e.Reason)
}

// QueryError reports that the accessibility tree of a process could not be
// reached at all (no root object or no window collection). Per-attribute
// failures inside a traversal degrade silently instead.
type QueryError struct {
	PID    int
	Reason string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to read accessibility tree for pid %d: %s", e.PID, e.Reason)
}

// NoPIDError reports that the resolved window carries no owning process ID,
// so its accessibility tree cannot be located.
type NoPIDError struct {
	Title string
}

func (e *NoPIDError) Error() string {
	return fmt.Sprintf("window %q has no owning process id", e.Title)
}

// MatchNotFoundError reports that no element matched the query text.
type MatchNotFoundError struct {
	Query string
}

func (e *MatchNotFoundError) Error() string {
	return fmt.Sprintf("no element found matching text %q", e.Query)
}

// AmbiguousMatchError reports that more than one element matched the query.
// Click targeting treats this as fatal: acting on the wrong element is
// strictly worse than not acting. The message lists every candidate so the
// caller can refine the query without a follow-up enumeration.
type AmbiguousMatchError struct {
	Query      string
	Candidates []model.Element
}

func (e *AmbiguousMatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d elements match text %q; refine the query:\n", len(e.Candidates), e.Query)
	for _, c := range e.Candidates {
		fmt.Fprintf(&b, "  id=%d %s", c.ID, c.Role)
		if c.Title != "" {
			fmt.Fprintf(&b, " title=%q", c.Title)
		}
		if c.Description != "" {
			fmt.Fprintf(&b, " desc=%q", c.Description)
		}
		if c.Bounds != nil {
			fmt.Fprintf(&b, " (%d,%d,%d,%d)", c.Bounds[0], c.Bounds[1], c.Bounds[2], c.Bounds[3])
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Count returns the number of candidates, for callers rendering summaries.
func (e *AmbiguousMatchError) Count() int {
	return len(e.Candidates)
}

// NoPositionError reports that the matched element carries no position data
// and therefore cannot be a click target.
type NoPositionError struct {
	Query string
	Label string
	Role  string
}

func (e *NoPositionError) Error() string {
	return fmt.Sprintf("element %q (%s) matching %q has no position data and cannot be clicked", e.Label, e.Role, e.Query)
}

// InjectionError reports that posting the synthetic mouse event failed.
type InjectionError struct {
	X, Y int
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("failed to click at (%d, %d)", e.X, e.Y)
}
