// Package render turns the editor's observable state into drawing
// commands against a small Canvas interface. The interface is what
// keeps the core headless: backends exist for ebiten, for fyne canvas
// objects, and for PDF export, and tests drive Draw with a recording
// canvas.
package render

import (
	"image/color"

	"github.com/a-is-4-adam/Shapes/internal/editor"
	"github.com/a-is-4-adam/Shapes/internal/geom"
)

// Canvas is the drawing surface abstraction. Implementations are not
// expected to retain the point slices they are handed.
type Canvas interface {
	// FillPolygon fills the closed polygon described by pts.
	FillPolygon(pts []geom.Point, clr color.Color)
	// StrokeLine draws a line segment from a to b.
	StrokeLine(a, b geom.Point, width float32, clr color.Color)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, clr color.Color)
}

var (
	outlineColor      = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	handleColor       = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	activeHandleColor = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	drawingColor      = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
)

const markerSize = 4.0

// Draw paints the whole scene: every committed polygon with its fill
// and outline, vertex handles on the selected polygon, and the
// in-progress drawing sequence. It runs after every state change and
// reads the store without mutating it.
func Draw(c Canvas, s *editor.Store) {
	for _, poly := range s.Polygons() {
		c.FillPolygon(poly.Points, poly.Color)
		strokeClosed(c, poly.Points)
	}
	if sel := s.Selected(); sel >= 0 {
		drawHandles(c, s.Polygon(sel).Points, s.SelectedVertex())
	}
	drawInProgress(c, s.Drawing())
}

func strokeClosed(c Canvas, pts []geom.Point) {
	for i := range pts {
		c.StrokeLine(pts[i], pts[(i+1)%len(pts)], 1, outlineColor)
	}
}

// drawHandles paints one hit-box sized square per vertex, with the
// selected vertex inverted.
func drawHandles(c Canvas, pts []geom.Point, selected int) {
	for i, v := range pts {
		clr := color.Color(handleColor)
		if i == selected {
			clr = activeHandleColor
		}
		c.FillRect(v.X-geom.HandleRadius, v.Y-geom.HandleRadius,
			2*geom.HandleRadius, 2*geom.HandleRadius, clr)
	}
}

func drawInProgress(c Canvas, pts []geom.Point) {
	for i := 0; i+1 < len(pts); i++ {
		c.StrokeLine(pts[i], pts[i+1], 1, drawingColor)
	}
	for _, p := range pts {
		c.FillRect(p.X-markerSize/2, p.Y-markerSize/2, markerSize, markerSize, drawingColor)
	}
}
