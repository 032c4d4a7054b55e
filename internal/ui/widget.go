// Package ui is the fyne frontend: a custom canvas widget that feeds
// pointer events into the editor plus a small toolbar for tool
// selection and PDF export.
package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/a-is-4-adam/Shapes/internal/editor"
	"github.com/a-is-4-adam/Shapes/internal/geom"
	"github.com/a-is-4-adam/Shapes/internal/render"
)

// EditorWidget is the interactive canvas. Fyne's event split maps onto
// the editor's pointer events directly: MouseDown is a press, Dragged
// is a move, MouseUp is a release and Tapped is the commit click (fyne
// only fires Tapped for non-drag clicks).
type EditorWidget struct {
	widget.BaseWidget
	editor *editor.Editor
}

var (
	_ fyne.Widget       = (*EditorWidget)(nil)
	_ fyne.Tappable     = (*EditorWidget)(nil)
	_ fyne.Draggable    = (*EditorWidget)(nil)
	_ desktop.Mouseable = (*EditorWidget)(nil)
)

// NewEditorWidget returns a canvas widget over ed.
func NewEditorWidget(ed *editor.Editor) *EditorWidget {
	w := &EditorWidget{editor: ed}
	w.ExtendBaseWidget(w)
	return w
}

// Editor returns the editor behind the widget.
func (w *EditorWidget) Editor() *editor.Editor { return w.editor }

// MouseDown delivers a press.
func (w *EditorWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.editor.Press(pos(e.Position))
	w.Refresh()
}

// MouseUp delivers the release. Drag ends are released here rather
// than in DragEnd, so a dragged pointer-up is not released twice.
func (w *EditorWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.editor.Release()
	w.Refresh()
}

// Dragged delivers a move.
func (w *EditorWidget) Dragged(e *fyne.DragEvent) {
	w.editor.Move(pos(e.Position))
	w.Refresh()
}

// DragEnd is handled in MouseUp.
func (w *EditorWidget) DragEnd() {}

// Tapped delivers the commit click.
func (w *EditorWidget) Tapped(e *fyne.PointEvent) {
	w.editor.Click(pos(e.Position))
	w.Refresh()
}

// CreateRenderer builds the widget renderer.
func (w *EditorWidget) CreateRenderer() fyne.WidgetRenderer {
	return &editorRenderer{
		widget:     w,
		background: canvas.NewRectangle(color.White),
	}
}

func pos(p fyne.Position) geom.Point {
	return geom.Point{X: float64(p.X), Y: float64(p.Y)}
}

type editorRenderer struct {
	widget     *EditorWidget
	background *canvas.Rectangle
}

// Objects rebuilds the scene from the store: a software-rasterized
// fill layer plus line and rectangle objects for outlines, the
// in-progress shape, and vertex handles.
func (r *editorRenderer) Objects() []fyne.CanvasObject {
	size := r.widget.Size()
	oc := newObjectCanvas(size)
	render.Draw(oc, r.widget.editor.Store())

	raster := canvas.NewRasterFromImage(oc.fill)
	raster.Resize(size)

	objects := make([]fyne.CanvasObject, 0, len(oc.objects)+2)
	objects = append(objects, r.background, raster)
	return append(objects, oc.objects...)
}

func (r *editorRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *editorRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *editorRenderer) Refresh() {
	canvas.Refresh(r.widget)
}

func (r *editorRenderer) Destroy() {}

// objectCanvas implements render.Canvas with fyne canvas objects.
// Polygon fills have no fyne primitive, so they are rasterized into an
// image using the same point-in-polygon test the editor hit-tests
// with.
type objectCanvas struct {
	fill    *image.NRGBA
	objects []fyne.CanvasObject
}

var _ render.Canvas = (*objectCanvas)(nil)

func newObjectCanvas(size fyne.Size) *objectCanvas {
	w, h := int(size.Width), int(size.Height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &objectCanvas{fill: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

func (c *objectCanvas) FillPolygon(pts []geom.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY, maxX, maxY := bounds(pts)
	rect := image.Rect(int(minX), int(minY), int(maxX)+1, int(maxY)+1)
	rect = rect.Intersect(c.fill.Bounds())
	nrgba := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			p := geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if geom.PointInPolygon(p, pts) {
				c.fill.SetNRGBA(x, y, nrgba)
			}
		}
	}
}

func (c *objectCanvas) StrokeLine(a, b geom.Point, width float32, clr color.Color) {
	line := canvas.NewLine(clr)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
	line.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
	c.objects = append(c.objects, line)
}

func (c *objectCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	rect := canvas.NewRectangle(clr)
	rect.Move(fyne.NewPos(float32(x), float32(y)))
	rect.Resize(fyne.NewSize(float32(w), float32(h)))
	c.objects = append(c.objects, rect)
}

func bounds(pts []geom.Point) (minX, minY, maxX, maxY float64) {
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY = minX, minY
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}
