//go:build darwin

package darwin

import "testing"

// fakeNode is a synthetic accessibility object for exercising the walk
// without a live process.
type fakeNode struct {
	attrs    axAttributes
	children []*fakeNode
}

// fakeAX implements axAPI over fakeNode graphs and counts handle releases.
type fakeAX struct {
	released map[*fakeNode]int
}

func newFakeAX() *fakeAX {
	return &fakeAX{released: make(map[*fakeNode]int)}
}

func (f *fakeAX) Attributes(node axNode) axAttributes {
	return node.(*fakeNode).attrs
}

func (f *fakeAX) Children(node axNode) []axNode {
	var out []axNode
	for _, c := range node.(*fakeNode).children {
		out = append(out, c)
	}
	return out
}

func (f *fakeAX) Release(node axNode) {
	f.released[node.(*fakeNode)]++
}

func btn(title string) *fakeNode {
	return &fakeNode{attrs: axAttributes{Role: "AXButton", Title: title, Bounds: &[4]int{0, 0, 10, 10}}}
}

func TestWalkTree_FlattensInVisitOrder(t *testing.T) {
	win := &fakeNode{
		attrs:    axAttributes{Role: "AXWindow", Title: "Doc"},
		children: []*fakeNode{btn("OK"), btn("Cancel")},
	}

	records := walkTree(newFakeAX(), []axNode{win})

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	wantTitles := []string{"Doc", "OK", "Cancel"}
	for i, want := range wantTitles {
		if records[i].Title != want {
			t.Errorf("record %d: expected title %q, got %q", i, want, records[i].Title)
		}
		if records[i].ID != i {
			t.Errorf("record %d: expected sequential ID %d, got %d", i, i, records[i].ID)
		}
	}
	if records[0].Role != "window" {
		t.Errorf("expected mapped role %q, got %q", "window", records[0].Role)
	}
	if records[1].Role != "btn" {
		t.Errorf("expected mapped role %q, got %q", "btn", records[1].Role)
	}
}

func TestWalkTree_CyclicGraphTerminates(t *testing.T) {
	// A self-referencing window: the AX API does not guarantee a finite
	// tree, so only the depth cap keeps this walk from running forever.
	win := &fakeNode{attrs: axAttributes{Role: "AXWindow", Title: "Loop"}}
	win.children = []*fakeNode{win}

	records := walkTree(newFakeAX(), []axNode{win})

	if len(records) == 0 {
		t.Fatal("expected a finite, non-empty result from a cyclic graph")
	}
	if len(records) != maxTraversalDepth {
		t.Errorf("expected %d records (one per depth level), got %d", maxTraversalDepth, len(records))
	}
}

func TestWalkTree_DepthCap(t *testing.T) {
	// A chain deeper than the cap: nodes past the cap are never visited.
	deep := btn("leaf")
	node := deep
	for i := 0; i < maxTraversalDepth+5; i++ {
		node = &fakeNode{attrs: axAttributes{Role: "AXGroup"}, children: []*fakeNode{node}}
	}

	records := walkTree(newFakeAX(), []axNode{node})

	if len(records) != maxTraversalDepth {
		t.Errorf("expected traversal capped at %d records, got %d", maxTraversalDepth, len(records))
	}
	for _, r := range records {
		if r.Title == "leaf" {
			t.Error("leaf below the depth cap should not have been visited")
		}
	}
}

func TestWalkTree_ReleasesEveryVisitedNode(t *testing.T) {
	a, b := btn("A"), btn("B")
	win := &fakeNode{attrs: axAttributes{Role: "AXWindow"}, children: []*fakeNode{a, b}}
	api := newFakeAX()

	walkTree(api, []axNode{win})

	for _, n := range []*fakeNode{win, a, b} {
		if api.released[n] != 1 {
			t.Errorf("node %q: expected exactly 1 release, got %d", n.attrs.Title, api.released[n])
		}
	}
}

func TestWalkTree_DegradedAttributes(t *testing.T) {
	// An element whose frame read failed has nil bounds but is still recorded.
	noPos := &fakeNode{attrs: axAttributes{Role: "AXButton", Title: "Ghost"}}
	win := &fakeNode{attrs: axAttributes{Role: "AXWindow"}, children: []*fakeNode{noPos}}

	records := walkTree(newFakeAX(), []axNode{win})

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Bounds != nil {
		t.Error("expected nil bounds for element whose frame read failed")
	}
	if _, ok := records[1].Center(); ok {
		t.Error("element without bounds must not report a center")
	}
}
