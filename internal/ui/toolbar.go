package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/a-is-4-adam/Shapes/internal/editor"
	"github.com/a-is-4-adam/Shapes/internal/export"
)

// exportScene writes the current scene to path and returns the status
// line for the toolbar label.
func exportScene(ed *editor.Editor, size fyne.Size, path string) string {
	err := export.WritePDF(path, ed.Store(), float64(size.Width), float64(size.Height))
	if err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	return fmt.Sprintf("exported %d shapes to %s", ed.Store().Len(), path)
}

// NewToolbar builds the tool row: one button per tool, a PDF export
// button, and a status label.
func NewToolbar(w *EditorWidget, exportPath string) fyne.CanvasObject {
	status := widget.NewLabel("tool: pencil")

	setTool := func(t editor.Tool) {
		w.Editor().SetTool(t)
		status.SetText("tool: " + t.String())
		w.Refresh()
	}

	exportButton := widget.NewButton("Export PDF", func() {
		status.SetText(exportScene(w.Editor(), w.Size(), exportPath))
	})

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		widget.NewButton("Hand", func() { setTool(editor.ToolHand) }),
		widget.NewButton("Select", func() { setTool(editor.ToolSelect) }),
		widget.NewButton("Pencil", func() { setTool(editor.ToolPencil) }),
		widget.NewSeparator(),
		exportButton,
		layout.NewSpacer(),
		status,
	)
}
