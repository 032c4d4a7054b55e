// Package editor holds the polygon store and the interaction state
// machine. The store is the sole owner of polygon data; the state
// machine turns normalized pointer events into store commands. Hosts
// (the ebiten and fyne frontends) deliver events and read the store
// back out to paint.
package editor

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/a-is-4-adam/Shapes/internal/geom"
)

// Polygon is a committed shape: at least three ordered points plus a
// fill color. Edge i connects point i to point (i+1) mod n; the shape
// is always implicitly closed.
type Polygon struct {
	Points []geom.Point
	Color  color.NRGBA
}

// Store owns the committed polygons, the in-progress drawing sequence,
// and the selection. Polygons are identified by their index; the
// collection is append-only, so positional identity is stable for the
// session.
//
// Mutations never edit a point slice in place. Each command installs a
// freshly built slice, so a render pass holding the previous value
// always sees either the old polygon or the new one, never a partial
// edit.
type Store struct {
	polygons       []Polygon
	drawing        []geom.Point
	selected       int
	selectedVertex int
}

// NewStore returns an empty store with nothing selected.
func NewStore() *Store {
	return &Store{selected: -1, selectedVertex: -1}
}

// Len returns the number of committed polygons.
func (s *Store) Len() int { return len(s.polygons) }

// Polygons returns the committed polygons. The slice and its contents
// are read-only from the caller's side.
func (s *Store) Polygons() []Polygon { return s.polygons }

// Polygon returns the polygon at index i.
func (s *Store) Polygon(i int) Polygon { return s.polygons[i] }

// Drawing returns the in-progress point sequence, which is non-empty
// only while the pencil tool is mid-shape.
func (s *Store) Drawing() []geom.Point { return s.drawing }

// Selected returns the selected polygon index, or -1.
func (s *Store) Selected() int { return s.selected }

// SelectedVertex returns the selected vertex index within the selected
// polygon, or -1.
func (s *Store) SelectedVertex() int { return s.selectedVertex }

// AppendDrawingPoint adds p to the in-progress sequence.
func (s *Store) AppendDrawingPoint(p geom.Point) {
	s.drawing = append(slices.Clone(s.drawing), p)
}

// ClearDrawing discards the in-progress sequence.
func (s *Store) ClearDrawing() {
	s.drawing = nil
}

// CommitPolygon turns the in-progress sequence into a committed
// polygon, colored by cycling the palette over the current polygon
// count, and clears the sequence. The sequence must already hold at
// least three points.
func (s *Store) CommitPolygon() {
	if len(s.drawing) < 3 {
		panic(fmt.Sprintf("editor: commit of %d-point polygon", len(s.drawing)))
	}
	s.polygons = append(s.polygons, Polygon{
		Points: slices.Clone(s.drawing),
		Color:  Palette[len(s.polygons)%len(Palette)],
	})
	s.drawing = nil
}

// InsertVertex splices p into polygon pi at index at, shifting the
// following vertices up by one.
func (s *Store) InsertVertex(pi, at int, p geom.Point) {
	poly := s.polygons[pi]
	if at < 0 || at > len(poly.Points) {
		panic(fmt.Sprintf("editor: insert at %d into %d-point polygon", at, len(poly.Points)))
	}
	poly.Points = slices.Insert(slices.Clone(poly.Points), at, p)
	s.polygons[pi] = poly
}

// TranslatePolygon shifts every point of polygon pi by (dx, dy).
func (s *Store) TranslatePolygon(pi int, dx, dy float64) {
	poly := s.polygons[pi]
	pts := make([]geom.Point, len(poly.Points))
	for i, p := range poly.Points {
		pts[i] = geom.Point{X: p.X + dx, Y: p.Y + dy}
	}
	poly.Points = pts
	s.polygons[pi] = poly
}

// MoveVertex replaces vertex vi of polygon pi with p.
func (s *Store) MoveVertex(pi, vi int, p geom.Point) {
	poly := s.polygons[pi]
	pts := slices.Clone(poly.Points)
	pts[vi] = p
	poly.Points = pts
	s.polygons[pi] = poly
}

// Select sets the selected polygon, or deselects with -1. Any vertex
// selection belongs to the previous choice and is dropped.
func (s *Store) Select(i int) {
	if i < -1 || i >= len(s.polygons) {
		panic(fmt.Sprintf("editor: select %d of %d polygons", i, len(s.polygons)))
	}
	s.selected = i
	s.selectedVertex = -1
}

// SelectVertex sets the selected vertex within the selected polygon,
// or clears it with -1.
func (s *Store) SelectVertex(i int) {
	if i >= 0 && (s.selected < 0 || i >= len(s.polygons[s.selected].Points)) {
		panic(fmt.Sprintf("editor: select vertex %d with polygon %d selected", i, s.selected))
	}
	s.selectedVertex = i
}
