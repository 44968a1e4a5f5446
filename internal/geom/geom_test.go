package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDistToSegmentClampsProjection(t *testing.T) {
	s := Vec{0, 0}
	e := Vec{10, 0}

	cases := []struct {
		name string
		p    Vec
		want float64
	}{
		{"above middle", Vec{5, 3}, 3},
		{"beyond end", Vec{14, 3}, 5},
		{"beyond start", Vec{-3, 4}, 5},
		{"on segment", Vec{7, 0}, 0},
	}
	for _, tc := range cases {
		got := DistToSegment(tc.p, s, e)
		if !almostEqual(got, tc.want) {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestDistToSegmentDegenerateEqualsPointDistance(t *testing.T) {
	p := Vec{3, 4}
	s := Vec{1, 1}
	if got, want := DistToSegment(p, s, s), Dist(p, s); !almostEqual(got, want) {
		t.Fatalf("degenerate segment: got %v want %v", got, want)
	}
}

func TestSegmentIntersectionCrossing(t *testing.T) {
	p, ok := SegmentIntersection(Vec{0, 0}, Vec{2, 2}, Vec{0, 2}, Vec{2, 0})
	if !ok {
		t.Fatal("expected intersection")
	}
	if !almostEqual(p.X, 1) || !almostEqual(p.Y, 1) {
		t.Fatalf("expected (1,1), got %+v", p)
	}
}

func TestSegmentIntersectionParallel(t *testing.T) {
	if _, ok := SegmentIntersection(Vec{0, 0}, Vec{10, 0}, Vec{0, 1}, Vec{10, 1}); ok {
		t.Fatal("parallel segments must not intersect")
	}
	// Collinear overlap also degrades to no intersection.
	if _, ok := SegmentIntersection(Vec{0, 0}, Vec{10, 0}, Vec{5, 0}, Vec{15, 0}); ok {
		t.Fatal("collinear segments must not intersect")
	}
}

func TestSegmentIntersectionOutsideRange(t *testing.T) {
	// Lines cross at (5,0) but the second segment ends before reaching it.
	if _, ok := SegmentIntersection(Vec{0, 0}, Vec{10, 0}, Vec{5, 5}, Vec{5, 1}); ok {
		t.Fatal("intersection outside parametric range must be rejected")
	}
}

func TestClassifySpan(t *testing.T) {
	s := Vec{0, 0}
	e := Vec{10, 0}

	if got := ClassifySpan(Vec{5, 7}, s, e); got != SpanInside {
		t.Fatalf("expected inside, got %v", got)
	}
	if got := ClassifySpan(Vec{-1, 2}, s, e); got != SpanBeyondStart {
		t.Fatalf("expected beyond_start, got %v", got)
	}
	if got := ClassifySpan(Vec{11, -2}, s, e); got != SpanBeyondEnd {
		t.Fatalf("expected beyond_end, got %v", got)
	}
	if got := ClassifySpan(Vec{3, 3}, s, s); got != SpanInside {
		t.Fatalf("degenerate segment should classify inside, got %v", got)
	}
}

func TestUnitZeroVector(t *testing.T) {
	if u := (Vec{}).Unit(); u.X != 0 || u.Y != 0 {
		t.Fatalf("unit of zero vector should be zero, got %+v", u)
	}
}
