// Package export writes a PDF snapshot of the current scene. The PDF
// page is sized to the canvas and painted through the same render pass
// as the interactive frontends, so the snapshot matches the screen.
package export

import (
	"image/color"

	"github.com/jung-kurt/gofpdf"

	"github.com/a-is-4-adam/Shapes/internal/editor"
	"github.com/a-is-4-adam/Shapes/internal/geom"
	"github.com/a-is-4-adam/Shapes/internal/render"
)

// WritePDF renders the store onto a single width x height point page
// at path.
func WritePDF(path string, s *editor.Store, width, height float64) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.AddPage()
	render.Draw(&pdfCanvas{pdf: pdf}, s)
	return pdf.OutputFileAndClose(path)
}

// pdfCanvas implements render.Canvas on a gofpdf document.
type pdfCanvas struct {
	pdf *gofpdf.Fpdf
}

var _ render.Canvas = (*pdfCanvas)(nil)

func (c *pdfCanvas) FillPolygon(pts []geom.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	points := make([]gofpdf.PointType, len(pts))
	for i, p := range pts {
		points[i] = gofpdf.PointType{X: p.X, Y: p.Y}
	}
	c.pdf.SetFillColor(rgb(clr))
	c.pdf.Polygon(points, "F")
}

func (c *pdfCanvas) StrokeLine(a, b geom.Point, width float32, clr color.Color) {
	c.pdf.SetDrawColor(rgb(clr))
	c.pdf.SetLineWidth(float64(width))
	c.pdf.Line(a.X, a.Y, b.X, b.Y)
}

func (c *pdfCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.pdf.SetFillColor(rgb(clr))
	c.pdf.Rect(x, y, w, h, "F")
}

func rgb(clr color.Color) (int, int, int) {
	r, g, b, _ := clr.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
