package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/a-is-4-adam/Shapes/internal/editor"
	"github.com/a-is-4-adam/Shapes/internal/geom"
)

func TestWritePDF(t *testing.T) {
	s := editor.NewStore()
	s.AppendDrawingPoint(geom.Point{X: 10, Y: 10})
	s.AppendDrawingPoint(geom.Point{X: 200, Y: 10})
	s.AppendDrawingPoint(geom.Point{X: 200, Y: 150})
	s.CommitPolygon()
	s.Select(0)

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := WritePDF(path, s, 800, 600); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported PDF is empty")
	}
}

func TestWritePDFEmptyScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := WritePDF(path, editor.NewStore(), 800, 600); err != nil {
		t.Fatalf("WritePDF of empty scene failed: %v", err)
	}
}
