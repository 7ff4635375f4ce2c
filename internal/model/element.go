package model

// Element is one record from a walk of an application's accessibility tree.
// Records are flat: the walker assigns sequential IDs in visit order and does
// not preserve parent/child links. The OS guarantees no persistent identity,
// so an Element is only meaningful within the enumeration that produced it.
type Element struct {
	ID          int     `yaml:"i"           json:"i"`           // Sequential integer ID (visit order)
	Role        string  `yaml:"r"           json:"r"`           // Abbreviated role code
	Title       string  `yaml:"t,omitempty" json:"t,omitempty"` // Visible label / title
	Value       string  `yaml:"v,omitempty" json:"v,omitempty"` // Current value
	Description string  `yaml:"d,omitempty" json:"d,omitempty"` // Accessibility description
	Bounds      *[4]int `yaml:"b,omitempty" json:"b,omitempty"` // [x, y, width, height]; nil when the frame read failed
	Enabled     *bool   `yaml:"e,omitempty" json:"e,omitempty"` // nil or true = enabled (omit); false = disabled (include)
}

// Center returns the screen-absolute center of the element's bounding box.
// ok is false when the element carries no position data.
func (el Element) Center() (p Point, ok bool) {
	if el.Bounds == nil {
		return Point{}, false
	}
	b := *el.Bounds
	return Point{X: b[0] + b[2]/2, Y: b[1] + b[3]/2}, true
}

// Label returns the most descriptive non-empty text attribute, for messages.
func (el Element) Label() string {
	if el.Title != "" {
		return el.Title
	}
	if el.Description != "" {
		return el.Description
	}
	return el.Value
}
