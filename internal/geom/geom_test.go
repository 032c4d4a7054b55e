package geom

import (
	"math"
	"testing"
)

var square = []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}

func TestDist(t *testing.T) {
	if d := Dist(Point{0, 0}, Point{3, 4}); d != 5 {
		t.Errorf("Dist failed: expected 5, got %v", d)
	}
	if d := Dist(Point{7, 7}, Point{7, 7}); d != 0 {
		t.Errorf("Dist of equal points: expected 0, got %v", d)
	}
}

func TestPointInPolygonSquare(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{50, 50}, true},
		{"near edge inside", Point{1, 50}, true},
		{"right of square", Point{150, 50}, false},
		{"left of square", Point{-10, 50}, false},
		{"above square", Point{50, -10}, false},
		{"below square", Point{50, 110}, false},
	}
	for _, tt := range tests {
		if got := PointInPolygon(tt.p, square); got != tt.want {
			t.Errorf("%s: PointInPolygon(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestPointInPolygonConvexCentroid(t *testing.T) {
	pentagon := []Point{{50, 0}, {100, 40}, {80, 100}, {20, 100}, {0, 40}}
	var cx, cy float64
	for _, p := range pentagon {
		cx += p.X
		cy += p.Y
	}
	centroid := Point{cx / 5, cy / 5}
	if !PointInPolygon(centroid, pentagon) {
		t.Errorf("centroid %v not inside convex pentagon", centroid)
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if PointInPolygon(Point{0, 0}, nil) {
		t.Error("empty polygon should contain nothing")
	}
	if PointInPolygon(Point{5, 0}, []Point{{0, 0}, {10, 0}}) {
		t.Error("two points are not a polygon")
	}
}

func TestPointInPolygonRotationInvariant(t *testing.T) {
	samples := []Point{{50, 50}, {150, 50}, {5, 5}, {99, 1}}
	for shift := 0; shift < len(square); shift++ {
		rotated := append(append([]Point{}, square[shift:]...), square[:shift]...)
		for _, p := range samples {
			if PointInPolygon(p, rotated) != PointInPolygon(p, square) {
				t.Errorf("rotation by %d changes answer for %v", shift, p)
			}
		}
	}
}

func TestProjectOntoSegment(t *testing.T) {
	a, b := Point{0, 0}, Point{100, 0}

	proj, ok := ProjectOntoSegment(Point{50, 30}, a, b)
	if !ok {
		t.Fatal("projection onto segment interior reported no result")
	}
	if proj.X != 50 || proj.Y != 0 {
		t.Errorf("projection = %v, want (50, 0)", proj)
	}

	if _, ok := ProjectOntoSegment(Point{150, 30}, a, b); ok {
		t.Error("projection beyond segment end should report no result")
	}
	if _, ok := ProjectOntoSegment(Point{-10, 30}, a, b); ok {
		t.Error("projection before segment start should report no result")
	}
	if _, ok := ProjectOntoSegment(Point{5, 5}, Point{7, 7}, Point{7, 7}); ok {
		t.Error("zero-length segment should report no result")
	}
}

func TestProjectOntoSegmentEndpoints(t *testing.T) {
	a, b := Point{0, 0}, Point{100, 0}
	// t exactly 0 and 1 are inside the parameter range.
	if proj, ok := ProjectOntoSegment(Point{0, 10}, a, b); !ok || proj != a {
		t.Errorf("projection at t=0: got %v, %v", proj, ok)
	}
	if proj, ok := ProjectOntoSegment(Point{100, 10}, a, b); !ok || proj != b {
		t.Errorf("projection at t=1: got %v, %v", proj, ok)
	}
}

func TestProjectOntoSegmentLiesOnSegment(t *testing.T) {
	a, b := Point{10, 20}, Point{70, 60}
	proj, ok := ProjectOntoSegment(Point{30, 55}, a, b)
	if !ok {
		t.Fatal("expected a projection")
	}
	// Cross product of (b-a) and (proj-a) is zero when proj is on the line.
	cross := (b.X-a.X)*(proj.Y-a.Y) - (b.Y-a.Y)*(proj.X-a.X)
	if math.Abs(cross) > 1e-9 {
		t.Errorf("projection %v not on segment line (cross %v)", proj, cross)
	}
}
