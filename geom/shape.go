package geom

// Shape is a closed set of drawable descriptors. Renderers switch on the
// concrete type; the core never reads shapes back.
type Shape interface {
	// Bounds returns the axis-aligned bounding box (min, max).
	Bounds() (Point, Point)
	isShape()
}

// Segment is a straight line between two points.
type Segment struct {
	From Point
	To   Point
}

// Ellipse is an axis-aligned ellipse given by its center and full width/height.
type Ellipse struct {
	Center Point
	Width  float64
	Height float64
}

func (Segment) isShape() {}
func (Ellipse) isShape() {}

// Bounds implements Shape.
func (s Segment) Bounds() (Point, Point) {
	return Point{X: min(s.From.X, s.To.X), Y: min(s.From.Y, s.To.Y)},
		Point{X: max(s.From.X, s.To.X), Y: max(s.From.Y, s.To.Y)}
}

// Bounds implements Shape.
func (e Ellipse) Bounds() (Point, Point) {
	hw, hh := e.Width/2, e.Height/2
	return Point{X: e.Center.X - hw, Y: e.Center.Y - hh}, Point{X: e.Center.X + hw, Y: e.Center.Y + hh}
}
