// Package world models the simulated environment: boundary segments,
// rooms, and the continuous-motion collision engine.
package world

import "evosim/internal/geom"

// Boundary is one wall of the environment. The visual segment [Start, End]
// is what the wall physically is; the collision segment [ColStart, ColEnd]
// contains the visual segment and may extend beyond both endpoints so that
// corner crossings and tunneling near an endpoint are still caught.
type Boundary struct {
	Start geom.Vec
	End   geom.Vec

	ColStart geom.Vec
	ColEnd   geom.Vec

	dir geom.Vec
}

// NewBoundary builds a wall whose collision segment extends the visual
// segment by extend beyond each endpoint along the wall's direction. A
// degenerate zero-length wall keeps a zero-length collision segment.
func NewBoundary(start, end geom.Vec, extend float64) Boundary {
	dir := end.Sub(start).Unit()
	return Boundary{
		Start:    start,
		End:      end,
		ColStart: start.Sub(dir.Scale(extend)),
		ColEnd:   end.Add(dir.Scale(extend)),
		dir:      dir,
	}
}

// Dir returns the wall's unit direction vector.
func (b Boundary) Dir() geom.Vec { return b.dir }

func (b Boundary) Length() float64 { return geom.Dist(b.Start, b.End) }
