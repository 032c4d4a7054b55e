package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/a-is-4-adam/Shapes/internal/editor"
)

// RunApp opens the fyne editor window and blocks until it closes.
// Snapshots taken from the toolbar are written to exportPath.
func RunApp(exportPath string) {
	fyneApp := app.New()
	window := fyneApp.NewWindow("Shapes")
	window.Resize(fyne.NewSize(1024, 768))

	editorWidget := NewEditorWidget(editor.New())
	toolbar := NewToolbar(editorWidget, exportPath)

	window.SetContent(container.NewBorder(toolbar, nil, nil, nil, editorWidget))
	window.ShowAndRun()
}
