// Package ebiten implements the render.Canvas interface on top of an
// ebiten image.
package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/a-is-4-adam/Shapes/internal/geom"
	"github.com/a-is-4-adam/Shapes/internal/render"
)

// whiteSubImage is the 1x1 texture used to fill polygon triangles.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas draws onto a destination ebiten image, typically the screen
// passed to Draw each frame.
type Canvas struct {
	dst *ebiten.Image
}

var _ render.Canvas = (*Canvas)(nil)

// New returns a canvas drawing onto dst.
func New(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// FillPolygon fills the polygon by triangulating a vector path against
// the white texture.
func (c *Canvas) FillPolygon(pts []geom.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	c.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// StrokeLine draws a line segment.
func (c *Canvas) StrokeLine(a, b geom.Point, width float32, clr color.Color) {
	vector.StrokeLine(c.dst,
		float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		width, clr, true)
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.dst,
		float32(x), float32(y), float32(w), float32(h), clr, false)
}
