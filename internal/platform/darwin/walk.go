//go:build darwin

package darwin

import "github.com/Wirasm/axcli/internal/model"

// maxTraversalDepth caps how deep the walk descends below a window. The AX
// graph is supplied by an external process and is not guaranteed to be a
// finite tree (self-references happen), so the cap is what guarantees
// termination.
const maxTraversalDepth = 20

// axNode is an opaque handle to an accessibility object owned by the OS
// subsystem. The walk releases every node it takes, on every path.
type axNode any

// axAttributes is one node's recordable state. A failed read of any single
// attribute shows up here as the zero value rather than aborting the walk.
type axAttributes struct {
	Role        string
	Title       string
	Value       string
	Description string
	Bounds      *[4]int
	Enabled     *bool
}

// axAPI abstracts attribute and child access so the bounded walk can be
// exercised against a synthetic graph without a live process.
type axAPI interface {
	Attributes(node axNode) axAttributes
	Children(node axNode) []axNode
	Release(node axNode)
}

// walkTree traverses the given roots depth-first using an explicit work
// stack, recording each visited node into a flat arena with sequential IDs.
// Ownership: walkTree releases every root and every child handle the API
// hands it.
func walkTree(api axAPI, roots []axNode) []model.Element {
	type frame struct {
		node  axNode
		depth int
	}

	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: roots[i]})
	}

	var records []model.Element
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		attrs := api.Attributes(f.node)
		records = append(records, model.Element{
			ID:          len(records),
			Role:        model.MapRole(attrs.Role),
			Title:       attrs.Title,
			Value:       attrs.Value,
			Description: attrs.Description,
			Bounds:      attrs.Bounds,
			Enabled:     attrs.Enabled,
		})

		if f.depth+1 < maxTraversalDepth {
			children := api.Children(f.node)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: children[i], depth: f.depth + 1})
			}
		}

		api.Release(f.node)
	}
	return records
}
