package platform

import (
	"strings"
	"testing"

	"github.com/Wirasm/axcli/internal/model"
)

func TestErrPermissionDenied_CarriesRemediation(t *testing.T) {
	msg := ErrPermissionDenied.Error()
	if !strings.Contains(msg, "System Settings > Privacy & Security > Accessibility") {
		t.Error("permission error must tell the user where to grant consent")
	}
}

func TestAmbiguousMatchError_ListsCandidates(t *testing.T) {
	err := &AmbiguousMatchError{
		Query: "ok",
		Candidates: []model.Element{
			{ID: 3, Role: "btn", Title: "OK", Bounds: &[4]int{10, 20, 30, 40}},
			{ID: 9, Role: "btn", Title: "OK", Description: "Confirm"},
		},
	}

	if err.Count() != 2 {
		t.Errorf("expected count 2, got %d", err.Count())
	}

	msg := err.Error()
	for _, want := range []string{`2 elements match text "ok"`, "id=3", "id=9", `desc="Confirm"`, "(10,20,30,40)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in error message, got:\n%s", want, msg)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&WindowNotFoundError{Title: "Untitled"}, `no window found matching title "Untitled"`},
		{&AppNotFoundError{App: "Nope"}, `no windows found for app "Nope"`},
		{&WindowLookupError{Reason: "boom"}, "failed to enumerate windows: boom"},
		{&NoPIDError{Title: "Ghost"}, `window "Ghost" has no owning process id`},
		{&MatchNotFoundError{Query: "save"}, `no element found matching text "save"`},
		{&InjectionError{X: 5, Y: 6}, "failed to click at (5, 6)"},
		{&QueryError{PID: 42, Reason: "timeout"}, "failed to read accessibility tree for pid 42: timeout"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestNoPositionError_NamesElement(t *testing.T) {
	err := &NoPositionError{Query: "ghost", Label: "Ghost", Role: "btn"}
	msg := err.Error()
	if !strings.Contains(msg, `"Ghost"`) || !strings.Contains(msg, "no position data") {
		t.Errorf("unexpected message: %s", msg)
	}
}
