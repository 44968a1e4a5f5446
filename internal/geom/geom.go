// Package geom provides the 2D primitives used by the collision engine.
package geom

import "math"

// Epsilon is the tolerance below which a direction determinant is treated
// as parallel.
const Epsilon = 1e-9

type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product.
func (v Vec) Cross(o Vec) float64 { return v.X*o.Y - v.Y*o.X }

func (v Vec) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Unit returns the normalized vector, or the zero vector when v has no
// length.
func (v Vec) Unit() Vec {
	n := v.Norm()
	if n < Epsilon {
		return Vec{}
	}
	return Vec{v.X / n, v.Y / n}
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// DistToSegment returns the shortest distance from p to the closed segment
// [s, e]. The projection parameter is clamped to [0, 1], so a degenerate
// zero-length segment measures the distance to its single point.
func DistToSegment(p, s, e Vec) float64 {
	d := e.Sub(s)
	den := d.Dot(d)
	if den < Epsilon {
		return Dist(p, s)
	}
	t := Clamp(p.Sub(s).Dot(d)/den, 0, 1)
	return Dist(p, s.Add(d.Scale(t)))
}

// SegmentIntersection returns the intersection point of segments [p1, p2]
// and [s, e], if one exists within both parametric ranges. Near-parallel
// segments report no intersection instead of a numerically unstable point.
func SegmentIntersection(p1, p2, s, e Vec) (Vec, bool) {
	d1 := p2.Sub(p1)
	d2 := e.Sub(s)
	den := d1.Cross(d2)
	if math.Abs(den) < Epsilon {
		return Vec{}, false
	}
	w := s.Sub(p1)
	t := w.Cross(d2) / den
	u := w.Cross(d1) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec{}, false
	}
	return p1.Add(d1.Scale(t)), true
}

// Span classifies where a point's projection onto the infinite line through
// a segment falls relative to the segment's endpoints.
type Span int

const (
	SpanInside Span = iota
	SpanBeyondStart
	SpanBeyondEnd
)

func (s Span) String() string {
	switch s {
	case SpanBeyondStart:
		return "beyond_start"
	case SpanBeyondEnd:
		return "beyond_end"
	default:
		return "inside"
	}
}

// ClassifySpan projects p onto the infinite line through [s, e] and reports
// whether the projection falls before s, after e, or within the segment's
// span. Degenerate segments classify as inside.
func ClassifySpan(p, s, e Vec) Span {
	d := e.Sub(s)
	den := d.Dot(d)
	if den < Epsilon {
		return SpanInside
	}
	t := p.Sub(s).Dot(d) / den
	if t < 0 {
		return SpanBeyondStart
	}
	if t > 1 {
		return SpanBeyondEnd
	}
	return SpanInside
}
