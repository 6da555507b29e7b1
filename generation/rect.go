package generation

// Rect is an axis-aligned box covering [X1, X2) x [Y1, Y2)
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect builds a rect from its top-left corner and size
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the integer midpoint of the rect
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r and other overlap or touch. Touching counts,
// so accepted rooms never share a wall.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether (x, y) is a carved interior tile of the rect
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}
