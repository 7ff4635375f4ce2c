package automation

import "github.com/Wirasm/axcli/internal/model"

// Listing is the output of an element enumeration.
type Listing struct {
	App      string          `yaml:"app,omitempty"    json:"app,omitempty"`
	PID      int             `yaml:"pid,omitempty"    json:"pid,omitempty"`
	Window   string          `yaml:"window,omitempty" json:"window,omitempty"`
	TS       int64           `yaml:"ts"               json:"ts"`
	Elements []model.Element `yaml:"elements"         json:"elements"`
}

// FindResult is the output of a passive text search. On an ambiguous match,
// Element is the first candidate, Total the full count, and Note explains.
type FindResult struct {
	OK      bool           `yaml:"ok"               json:"ok"`
	Action  string         `yaml:"action"           json:"action"`
	Query   string         `yaml:"query"            json:"query"`
	App     string         `yaml:"app,omitempty"    json:"app,omitempty"`
	Window  string         `yaml:"window,omitempty" json:"window,omitempty"`
	PID     int            `yaml:"pid"              json:"pid"`
	Element *model.Element `yaml:"element"          json:"element"`
	Total   int            `yaml:"total"            json:"total"`
	Note    string         `yaml:"note,omitempty"   json:"note,omitempty"`
}

// ActionResult summarizes a completed click, including which element was
// targeted when the click was text-resolved.
type ActionResult struct {
	OK      bool           `yaml:"ok"                json:"ok"`
	Action  string         `yaml:"action"            json:"action"`
	X       int            `yaml:"x"                 json:"x"`
	Y       int            `yaml:"y"                 json:"y"`
	App     string         `yaml:"app,omitempty"     json:"app,omitempty"`
	Window  string         `yaml:"window,omitempty"  json:"window,omitempty"`
	PID     int            `yaml:"pid,omitempty"     json:"pid,omitempty"`
	Element *model.Element `yaml:"element,omitempty" json:"element,omitempty"`
}
