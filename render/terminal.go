package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/spiderweb/geom"
)

// Glyphs used per layer.
var glyphs = map[Layer]rune{
	LayerStrand: '.',
	LayerBridge: '=',
	LayerTrace:  '+',
	LayerAgent:  '@',
	LayerOther:  '#',
}

// Viewport maps web coordinates to terminal cells.
type Viewport struct {
	Origin geom.Point // web point shown in cell (0,0)
	ScaleX float64    // cells per web unit, horizontally
	ScaleY float64    // cells per web unit, vertically
}

// Fit returns the viewport showing the box [lo, hi] inside cols×rows cells.
// Cells are assumed twice as tall as wide.
func Fit(lo, hi geom.Point, cols, rows int) Viewport {
	w, h := hi.X-lo.X, hi.Y-lo.Y
	sx, sy := math.Inf(1), math.Inf(1)
	if w > 0 {
		sx = float64(cols-1) / w
	}
	if h > 0 {
		sy = 2 * float64(rows-1) / h
	}
	s := min(sx, sy)
	if math.IsInf(s, 1) {
		s = 1
	}
	return Viewport{Origin: lo, ScaleX: s, ScaleY: s / 2}
}

// Cell returns the cell holding p.
func (v Viewport) Cell(p geom.Point) (x, y int) {
	return int(math.Round((p.X - v.Origin.X) * v.ScaleX)),
		int(math.Round((p.Y - v.Origin.Y) * v.ScaleY))
}

// Paint clears screen, draws every item of scene and shows the result.
func Paint(screen tcell.Screen, scene *Scene, v Viewport) {
	screen.Clear()
	cols, rows := screen.Size()
	for _, it := range scene.Items() {
		style := tcell.StyleDefault.Foreground(tcell.GetColor(it.Color))
		glyph := glyphs[LayerOf(it.Owner)]
		plot := func(x, y int) {
			if x >= 0 && y >= 0 && x < cols && y < rows {
				screen.SetContent(x, y, glyph, nil, style)
			}
		}
		switch s := it.Shape.(type) {
		case geom.Segment:
			x0, y0 := v.Cell(s.From)
			x1, y1 := v.Cell(s.To)
			Line(x0, y0, x1, y1, plot)
		case geom.Ellipse:
			ellipse(v, s, plot)
		}
	}
	screen.Show()
}

// Line calls plot for every cell of the Bresenham line from (x0,y0) to
// (x1,y1), endpoints included.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// ellipse plots the outline of e, or a single cell when e fits in one.
func ellipse(v Viewport, e geom.Ellipse, plot func(x, y int)) {
	rx, ry := e.Width/2*v.ScaleX, e.Height/2*v.ScaleY
	cx, cy := v.Cell(e.Center)
	if rx < 1 && ry < 1 {
		plot(cx, cy)
		return
	}
	steps := int(math.Ceil(2 * math.Pi * max(rx, ry)))
	for i := 0; i < steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		plot(cx+int(math.Round(rx*math.Cos(t))), cy+int(math.Round(ry*math.Sin(t))))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
