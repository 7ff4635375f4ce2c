package model

// Window represents an application window as reported by the OS window
// server. A Window is a fresh snapshot per lookup, never cached: the window
// may move, close, or change title at any time after it is returned.
type Window struct {
	App       string `yaml:"app"                 json:"app"`
	PID       int    `yaml:"pid"                 json:"pid"`
	Title     string `yaml:"title"               json:"title"`
	ID        int    `yaml:"id"                  json:"id"`
	Bounds    [4]int `yaml:"bounds"              json:"bounds"`
	Focused   bool   `yaml:"focused,omitempty"   json:"focused,omitempty"`
	Minimized bool   `yaml:"minimized,omitempty" json:"minimized,omitempty"`
}

// Origin returns the window's top-left corner in screen coordinates.
func (w Window) Origin() Point {
	return Point{X: w.Bounds[0], Y: w.Bounds[1]}
}
