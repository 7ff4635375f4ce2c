package model

// Point is a pixel position. Whether it is screen-absolute or
// window-relative depends on context; ToRelative and ToAbsolute convert
// between the two spaces and are exact inverses.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// ToRelative converts a screen-absolute point to window-relative
// coordinates given the window's origin.
func ToRelative(p, origin Point) Point {
	return Point{X: p.X - origin.X, Y: p.Y - origin.Y}
}

// ToAbsolute converts a window-relative point to screen-absolute
// coordinates given the window's origin.
func ToAbsolute(p, origin Point) Point {
	return Point{X: p.X + origin.X, Y: p.Y + origin.Y}
}
