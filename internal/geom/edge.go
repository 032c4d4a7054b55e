package geom

import "math"

// Insertion describes where a new vertex should be spliced into a
// polygon: the projected point on the nearest edge and the index the
// point must be inserted at to keep the winding order intact.
type Insertion struct {
	Point Point
	Index int
}

// ClosestEdgeInsertion scans every edge (i, i+1 mod n) of the polygon,
// projects p onto it, and keeps the closest projection within
// EdgeThreshold. The insertion index is the edge's start index plus
// one, so the new vertex lands between the edge's endpoints. Ties go to
// the earliest edge. Reports false when no edge is near enough.
func ClosestEdgeInsertion(p Point, pts []Point) (Insertion, bool) {
	best := Insertion{}
	bestDist := math.Inf(1)
	found := false
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		proj, ok := ProjectOntoSegment(p, a, b)
		if !ok {
			continue
		}
		d := Dist(p, proj)
		if d < EdgeThreshold && d < bestDist {
			best = Insertion{Point: proj, Index: i + 1}
			bestDist = d
			found = true
		}
	}
	return best, found
}
