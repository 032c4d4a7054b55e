package editor

import (
	"testing"

	"github.com/a-is-4-adam/Shapes/internal/geom"
)

func commitSquare(s *Store, x, y float64) {
	s.AppendDrawingPoint(geom.Point{X: x, Y: y})
	s.AppendDrawingPoint(geom.Point{X: x + 100, Y: y})
	s.AppendDrawingPoint(geom.Point{X: x + 100, Y: y + 100})
	s.AppendDrawingPoint(geom.Point{X: x, Y: y + 100})
	s.CommitPolygon()
}

func TestCommitPolygon(t *testing.T) {
	s := NewStore()
	commitSquare(s, 0, 0)

	if s.Len() != 1 {
		t.Fatalf("expected 1 polygon, got %d", s.Len())
	}
	if len(s.Drawing()) != 0 {
		t.Errorf("drawing sequence not cleared on commit")
	}
	if got := len(s.Polygon(0).Points); got != 4 {
		t.Errorf("expected 4 points, got %d", got)
	}
}

func TestCommitPolygonPaletteCycle(t *testing.T) {
	s := NewStore()
	for i := 0; i < len(Palette)+2; i++ {
		commitSquare(s, float64(i), 0)
	}
	for i := 0; i < s.Len(); i++ {
		want := Palette[i%len(Palette)]
		if got := s.Polygon(i).Color; got != want {
			t.Errorf("polygon %d color = %v, want %v", i, got, want)
		}
	}
}

func TestInsertVertex(t *testing.T) {
	s := NewStore()
	commitSquare(s, 0, 0)
	s.InsertVertex(0, 2, geom.Point{X: 100, Y: 50})

	pts := s.Polygon(0).Points
	if len(pts) != 5 {
		t.Fatalf("expected 5 points after insert, got %d", len(pts))
	}
	if pts[2] != (geom.Point{X: 100, Y: 50}) {
		t.Errorf("point at insert index = %v, want (100, 50)", pts[2])
	}
	if pts[3] != (geom.Point{X: 100, Y: 100}) {
		t.Errorf("following point = %v, want (100, 100)", pts[3])
	}
}

func TestTranslatePolygonRoundTrip(t *testing.T) {
	s := NewStore()
	commitSquare(s, 10, 20)
	before := s.Polygon(0).Points

	s.TranslatePolygon(0, 7, -11)
	s.TranslatePolygon(0, -7, 11)

	after := s.Polygon(0).Points
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("point %d = %v after round trip, want %v", i, after[i], before[i])
		}
	}
}

func TestMoveVertex(t *testing.T) {
	s := NewStore()
	commitSquare(s, 0, 0)
	s.MoveVertex(0, 1, geom.Point{X: 120, Y: -5})

	if got := s.Polygon(0).Points[1]; got != (geom.Point{X: 120, Y: -5}) {
		t.Errorf("vertex 1 = %v, want (120, -5)", got)
	}
	if got := s.Polygon(0).Points[0]; got != (geom.Point{X: 0, Y: 0}) {
		t.Errorf("vertex 0 moved to %v", got)
	}
}

// Mutations must install fresh point slices so a render pass holding
// the previous slice never sees the edit.
func TestMutationsPreserveOldSnapshots(t *testing.T) {
	s := NewStore()
	commitSquare(s, 0, 0)

	snapshot := s.Polygon(0).Points
	s.TranslatePolygon(0, 50, 50)
	if snapshot[0] != (geom.Point{X: 0, Y: 0}) {
		t.Errorf("translate mutated the old snapshot: %v", snapshot[0])
	}

	snapshot = s.Polygon(0).Points
	s.MoveVertex(0, 0, geom.Point{X: -1, Y: -1})
	if snapshot[0] != (geom.Point{X: 50, Y: 50}) {
		t.Errorf("move vertex mutated the old snapshot: %v", snapshot[0])
	}

	snapshot = s.Polygon(0).Points
	s.InsertVertex(0, 1, geom.Point{X: 5, Y: 5})
	if len(snapshot) != 4 {
		t.Errorf("insert mutated the old snapshot length: %d", len(snapshot))
	}
}

func TestSelectClearsVertexSelection(t *testing.T) {
	s := NewStore()
	commitSquare(s, 0, 0)
	commitSquare(s, 200, 0)

	s.Select(0)
	s.SelectVertex(2)
	s.Select(1)
	if s.SelectedVertex() != -1 {
		t.Errorf("vertex selection survived selecting another polygon")
	}

	s.SelectVertex(1)
	s.Select(-1)
	if s.Selected() != -1 || s.SelectedVertex() != -1 {
		t.Errorf("deselect left selection (%d, %d)", s.Selected(), s.SelectedVertex())
	}
}

func TestCommitRequiresThreePoints(t *testing.T) {
	s := NewStore()
	s.AppendDrawingPoint(geom.Point{X: 0, Y: 0})
	s.AppendDrawingPoint(geom.Point{X: 1, Y: 1})

	defer func() {
		if recover() == nil {
			t.Error("commit of a 2-point sequence did not panic")
		}
	}()
	s.CommitPolygon()
}
