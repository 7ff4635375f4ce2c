package model

import "strings"

// MatchOutcome classifies the result of a text search over elements.
type MatchOutcome int

const (
	MatchNone MatchOutcome = iota
	MatchUnique
	MatchAmbiguous
)

// MatchResult is the outcome of FindMatches. On MatchUnique, Element is the
// single match. On MatchAmbiguous, Element is the first candidate and
// Candidates holds all of them; the caller decides whether ambiguity is a
// warning (passive search) or a hard failure (click targeting); this layer
// never picks a winner.
type MatchResult struct {
	Outcome    MatchOutcome
	Element    *Element
	Candidates []Element
}

// Count returns the number of matching candidates.
func (r MatchResult) Count() int {
	return len(r.Candidates)
}

// FindMatches searches elements for those whose title, value, or description
// contains query as a case-insensitive substring. The query must be
// non-empty; callers validate that before searching.
func FindMatches(elements []Element, query string) MatchResult {
	q := strings.ToLower(query)
	var candidates []Element
	for _, el := range elements {
		if matchesText(el, q) {
			candidates = append(candidates, el)
		}
	}
	switch len(candidates) {
	case 0:
		return MatchResult{Outcome: MatchNone}
	case 1:
		return MatchResult{Outcome: MatchUnique, Element: &candidates[0], Candidates: candidates}
	default:
		return MatchResult{Outcome: MatchAmbiguous, Element: &candidates[0], Candidates: candidates}
	}
}

func matchesText(el Element, queryLower string) bool {
	return strings.Contains(strings.ToLower(el.Title), queryLower) ||
		strings.Contains(strings.ToLower(el.Value), queryLower) ||
		strings.Contains(strings.ToLower(el.Description), queryLower)
}
