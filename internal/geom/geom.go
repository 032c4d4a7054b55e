// Package geom provides the pure 2D geometry used by the editor:
// point-in-polygon testing, point-to-segment projection, and the hit
// thresholds shared by the interaction code and the render pass.
package geom

import "math"

// Hit thresholds, in canvas pixels.
const (
	// HandleRadius is the half-width of a vertex handle. A press closer
	// than this to a vertex grabs the handle.
	HandleRadius = 8.0

	// EdgeThreshold is the maximum perpendicular distance at which a
	// point counts as lying on a polygon edge.
	EdgeThreshold = 10.0

	// CloseThreshold is the maximum distance from the first drawn point
	// at which a click closes the in-progress shape.
	CloseThreshold = 20.0
)

// Point is a position in canvas pixel coordinates. Points have no
// identity; they compare by value.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// PointInPolygon reports whether p lies inside the polygon described by
// pts, using the ray-casting parity test: a horizontal ray from p
// crosses an odd number of edges iff p is inside. Fewer than 3 points
// is not a polygon and always yields false.
func PointInPolygon(p Point, pts []Point) bool {
	if len(pts) < 3 {
		return false
	}
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		if p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// ProjectOntoSegment returns the orthogonal projection of p onto the
// segment a-b. It reports false when the segment has zero length or
// when the projection falls outside the segment, so a caller probing
// for "on an edge" never gets an endpoint clamped back at them.
func ProjectOntoSegment(p, a, b Point) (Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Point{}, false
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 || t > 1 {
		return Point{}, false
	}
	return Point{X: a.X + t*dx, Y: a.Y + t*dy}, true
}
