// Package app is the ebiten frontend: it owns the window loop,
// normalizes mouse input into the editor's pointer events, and paints
// the store through the ebiten render backend.
package app

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/a-is-4-adam/Shapes/internal/editor"
	"github.com/a-is-4-adam/Shapes/internal/export"
	"github.com/a-is-4-adam/Shapes/internal/geom"
	"github.com/a-is-4-adam/Shapes/internal/render"
	ebitenrender "github.com/a-is-4-adam/Shapes/internal/render/ebiten"
)

var backgroundColor = color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}

// Config holds the window settings from the command line.
type Config struct {
	Width      int
	Height     int
	ExportPath string
}

// App implements ebiten.Game around an Editor.
type App struct {
	cfg    Config
	editor *editor.Editor

	lastX, lastY int
}

// New returns an app with an empty editor.
func New(cfg Config) *App {
	return &App{cfg: cfg, editor: editor.New()}
}

// Update polls input and advances the editor. Cursor positions arrive
// from ebiten already in logical canvas coordinates, so no scaling is
// applied here. Pointer-up delivers Release before Click; the editor
// consumes the click itself when the release ended a drag.
func (a *App) Update() error {
	x, y := ebiten.CursorPosition()
	p := point(x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.editor.Press(p)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (x != a.lastX || y != a.lastY) {
		a.editor.Move(p)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.editor.Release()
		a.editor.Click(p)
	}
	a.lastX, a.lastY = x, y

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		a.editor.SetTool(editor.ToolHand)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		a.editor.SetTool(editor.ToolSelect)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		a.editor.SetTool(editor.ToolPencil)
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		a.exportPDF()
	}

	return nil
}

func (a *App) exportPDF() {
	err := export.WritePDF(a.cfg.ExportPath, a.editor.Store(),
		float64(a.cfg.Width), float64(a.cfg.Height))
	if err != nil {
		log.Printf("PDF export failed: %v", err)
		return
	}
	log.Printf("Exported %d polygons to %s", a.editor.Store().Len(), a.cfg.ExportPath)
}

// Draw paints the scene and a one-line tool readout.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	render.Draw(ebitenrender.New(screen), a.editor.Store())
	ebitenutil.DebugPrintAt(screen,
		"tool: "+a.editor.Tool().String()+"  [1] hand  [2] select  [3] pencil  [E] export PDF",
		4, a.cfg.Height-18)
}

// Layout reports the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// Run opens the window and blocks until it closes.
func Run(cfg Config) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Shapes")
	return ebiten.RunGame(New(cfg))
}

func point(x, y int) geom.Point {
	return geom.Point{X: float64(x), Y: float64(y)}
}
