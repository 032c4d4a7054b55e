package editor

import "github.com/a-is-4-adam/Shapes/internal/geom"

// Tool is the active editing mode.
type Tool int

const (
	// ToolHand moves whole shapes.
	ToolHand Tool = iota
	// ToolSelect moves whole shapes and drags individual vertices.
	ToolSelect
	// ToolPencil draws new shapes point by point and splices vertices
	// into existing edges.
	ToolPencil
)

// String returns the tool name as shown in the frontends.
func (t Tool) String() string {
	switch t {
	case ToolHand:
		return "hand"
	case ToolSelect:
		return "select"
	case ToolPencil:
		return "pencil"
	}
	return "unknown"
}

// DragMode is the kind of drag session in progress.
type DragMode int

const (
	// DragNone means no drag session is active.
	DragNone DragMode = iota
	// DragMove translates the selected polygon.
	DragMove
	// DragResize relocates the selected vertex.
	DragResize
)

// Editor is the interaction state machine. It consumes the normalized
// pointer events Press, Move, Release and Click plus SetTool, performs
// hit-testing against the store, and issues the resulting mutation
// commands. Everything runs on the goroutine delivering the events;
// there is no internal locking.
//
// Hosts deliver Release before Click on a pointer-up. A release that
// ends a drag latches suppression of the click that belongs to the
// same pointer-up, so an end-of-drag release is never also interpreted
// as a pencil click.
type Editor struct {
	store         *Store
	tool          Tool
	drag          DragMode
	anchor        geom.Point
	suppressClick bool
}

// New returns an editor over an empty store with the pencil tool
// active.
func New() *Editor {
	return &Editor{store: NewStore(), tool: ToolPencil}
}

// Store returns the polygon store, for render passes and tests.
func (e *Editor) Store() *Store { return e.store }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// Drag returns the active drag mode.
func (e *Editor) Drag() DragMode { return e.drag }

// SetTool switches the active tool. Switching to the pencil drops the
// selection; switching away from it drops the in-progress shape. Any
// switch ends a drag session.
func (e *Editor) SetTool(t Tool) {
	if t == ToolPencil {
		e.store.Select(-1)
	} else {
		e.store.ClearDrawing()
	}
	e.tool = t
	e.drag = DragNone
	e.anchor = geom.Point{}
	e.suppressClick = false
}

// Press starts a drag session under the hand and select tools. With the
// select tool and a polygon already selected, a press on one of its
// vertex handles starts a resize of that vertex. Otherwise a press
// inside a polygon selects it and starts a move; later polygons are
// tried first so the shape drawn on top wins. A press on empty canvas
// deselects everything.
func (e *Editor) Press(p geom.Point) {
	e.suppressClick = false
	if e.tool != ToolHand && e.tool != ToolSelect {
		return
	}
	if e.tool == ToolSelect && e.store.Selected() >= 0 {
		for i, v := range e.store.Polygon(e.store.Selected()).Points {
			if geom.Dist(p, v) < geom.HandleRadius {
				e.store.SelectVertex(i)
				e.drag = DragResize
				e.anchor = p
				return
			}
		}
	}
	for i := e.store.Len() - 1; i >= 0; i-- {
		if geom.PointInPolygon(p, e.store.Polygon(i).Points) {
			e.store.Select(i)
			e.drag = DragMove
			e.anchor = p
			return
		}
	}
	e.store.Select(-1)
}

// Move advances an active drag session by the delta from the previous
// pointer sample. A move with no drag in progress is a no-op.
func (e *Editor) Move(p geom.Point) {
	if e.drag == DragNone {
		return
	}
	dx, dy := p.X-e.anchor.X, p.Y-e.anchor.Y
	sel := e.store.Selected()
	switch e.drag {
	case DragMove:
		e.store.TranslatePolygon(sel, dx, dy)
	case DragResize:
		vi := e.store.SelectedVertex()
		old := e.store.Polygon(sel).Points[vi]
		e.store.MoveVertex(sel, vi, geom.Point{X: old.X + dx, Y: old.Y + dy})
	}
	e.anchor = p
}

// Release ends the drag session. A release with no drag in progress
// also drops the vertex selection, so a plain click off a handle lets
// go of it. A release that did end a drag latches suppression of the
// click arriving for the same pointer-up.
func (e *Editor) Release() {
	dragging := e.drag != DragNone
	e.drag = DragNone
	e.anchor = geom.Point{}
	e.suppressClick = dragging
	if !dragging {
		e.store.SelectVertex(-1)
	}
}

// Click is the pencil's commit gesture. With more than two points drawn
// and the click near the first of them, the shape closes and is
// committed; the closing click itself is discarded. A click with
// nothing drawn yet first checks existing polygons, newest first, for a
// nearby edge and on a hit splices a new vertex there instead of
// starting a shape. Any other click extends the in-progress sequence.
// Clicks are ignored while a drag session is active, and the one click
// following a drag-ending release is consumed without effect.
func (e *Editor) Click(p geom.Point) {
	if e.drag != DragNone {
		return
	}
	if e.suppressClick {
		e.suppressClick = false
		return
	}
	if e.tool != ToolPencil {
		return
	}
	drawing := e.store.Drawing()
	if len(drawing) > 2 && geom.Dist(p, drawing[0]) < geom.CloseThreshold {
		e.store.CommitPolygon()
		return
	}
	if len(drawing) == 0 {
		for i := e.store.Len() - 1; i >= 0; i-- {
			ins, ok := geom.ClosestEdgeInsertion(p, e.store.Polygon(i).Points)
			if !ok {
				continue
			}
			e.store.InsertVertex(i, ins.Index, ins.Point)
			e.store.Select(i)
			e.store.SelectVertex(ins.Index)
			return
		}
	}
	e.store.AppendDrawingPoint(p)
}
