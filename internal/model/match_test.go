package model

import "testing"

func TestFindMatches_UniqueCaseInsensitive(t *testing.T) {
	elements := []Element{
		{ID: 0, Title: "File"},
		{ID: 1, Title: "Edit"},
	}

	result := FindMatches(elements, "file")

	if result.Outcome != MatchUnique {
		t.Fatalf("expected MatchUnique, got %v", result.Outcome)
	}
	if result.Element.Title != "File" {
		t.Errorf("expected matched title %q, got %q", "File", result.Element.Title)
	}
	if result.Count() != 1 {
		t.Errorf("expected count 1, got %d", result.Count())
	}
}

func TestFindMatches_Ambiguous(t *testing.T) {
	elements := []Element{
		{ID: 0, Title: "OK"},
		{ID: 1, Title: "OK", Description: "Confirm"},
	}

	result := FindMatches(elements, "ok")

	if result.Outcome != MatchAmbiguous {
		t.Fatalf("expected MatchAmbiguous, got %v", result.Outcome)
	}
	if result.Count() != 2 {
		t.Errorf("expected count 2, got %d", result.Count())
	}
	// The first candidate is surfaced but never selected for the caller.
	if result.Element.ID != 0 {
		t.Errorf("expected first candidate id 0, got %d", result.Element.ID)
	}
}

func TestFindMatches_NotFound(t *testing.T) {
	elements := []Element{
		{Title: "File"},
		{Title: "Edit"},
	}

	result := FindMatches(elements, "save")

	if result.Outcome != MatchNone {
		t.Fatalf("expected MatchNone, got %v", result.Outcome)
	}
	if result.Element != nil {
		t.Error("expected nil element on no match")
	}
	if result.Count() != 0 {
		t.Errorf("expected count 0, got %d", result.Count())
	}
}

func TestFindMatches_SearchesValueAndDescription(t *testing.T) {
	elements := []Element{
		{ID: 0, Value: "42"},
		{ID: 1, Description: "submit the form"},
		{ID: 2, Title: "unrelated"},
	}

	if r := FindMatches(elements, "42"); r.Outcome != MatchUnique || r.Element.ID != 0 {
		t.Errorf("value match: expected unique id 0, got %+v", r)
	}
	if r := FindMatches(elements, "SUBMIT"); r.Outcome != MatchUnique || r.Element.ID != 1 {
		t.Errorf("description match: expected unique id 1, got %+v", r)
	}
}

func TestFindMatches_SubstringNotFuzzy(t *testing.T) {
	elements := []Element{{Title: "Save As"}}

	if r := FindMatches(elements, "ave a"); r.Outcome != MatchUnique {
		t.Error("substring inside title should match")
	}
	if r := FindMatches(elements, "sava"); r.Outcome != MatchNone {
		t.Error("near-miss text must not match: no fuzzy matching")
	}
}

func TestFindMatches_ExactCandidateCount(t *testing.T) {
	elements := []Element{
		{ID: 0, Title: "Tab 1"},
		{ID: 1, Title: "Tab 2"},
		{ID: 2, Title: "Tab 3"},
		{ID: 3, Title: "Close"},
	}

	result := FindMatches(elements, "tab")

	if result.Outcome != MatchAmbiguous {
		t.Fatalf("expected MatchAmbiguous, got %v", result.Outcome)
	}
	if result.Count() != 3 {
		t.Errorf("expected count 3, got %d", result.Count())
	}
}
