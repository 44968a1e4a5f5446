package world

import (
	"math"

	"evosim/internal/geom"
)

// ContactEpsilon is the slack applied to the radius-versus-distance test
// and to the parallel-motion suppression. It is deliberately looser than
// geom.Epsilon: it absorbs accumulated motion error, not just float noise.
const ContactEpsilon = 1e-6

// Collision describes one wall triggered by one motion step. Events are
// transient; they are consumed by the caller within the same step.
type Collision struct {
	Boundary Boundary

	// Span classifies the mover's current position against the wall's
	// visual span: inside it, or beyond one of its endpoints.
	Span geom.Span

	// TrueIntersection is where the step crosses the visual segment,
	// when it does.
	TrueIntersection geom.Vec
	HasTrue          bool

	// ExtendedIntersection is where the step crosses the collision
	// segment, when it does.
	ExtendedIntersection geom.Vec
	HasExtended          bool

	// JumpedThrough reports that the straight-line step carried the mover
	// fully past the wall within this single step, a case the end-of-step
	// distance test cannot see.
	JumpedThrough bool

	// Distance is the perpendicular distance from the step's destination
	// to the wall's visual segment.
	Distance float64
}

// Collides reports every wall the step from current to next crosses or
// comes within radius of. It is a pure function of the room and the two
// positions: multiple walls may trigger in one step (corners), and no
// finite input makes it panic. Zero-length steps and degenerate walls
// degrade to the parallel path of the intersection test.
func (r *Room) Collides(current, next geom.Vec, radius float64) []Collision {
	var out []Collision
	motion := next.Sub(current)
	stepLen := motion.Norm()

	for _, wall := range r.Walls {
		distance := geom.DistToSegment(next, wall.Start, wall.End)
		extended, hasExtended := geom.SegmentIntersection(current, next, wall.ColStart, wall.ColEnd)
		trueHit, hasTrue := geom.SegmentIntersection(current, next, wall.Start, wall.End)

		jumped := false
		if hasExtended {
			jumped = stepLen > geom.Dist(current, extended)
		}

		// A hit only on the artificially lengthened segment is a phantom
		// contact beyond the wall's endpoint. When the motion has no
		// component along the wall's direction the mover is passing the
		// endpoint, not the wall itself; without this skip it would stop
		// at the extension. Known limitation: walls meeting at acute
		// angles are not specially handled here.
		if hasExtended && !hasTrue && math.Abs(motion.Dot(wall.Dir())) < ContactEpsilon {
			continue
		}

		if radius-distance > ContactEpsilon || jumped {
			out = append(out, Collision{
				Boundary:             wall,
				Span:                 geom.ClassifySpan(current, wall.Start, wall.End),
				TrueIntersection:     trueHit,
				HasTrue:              hasTrue,
				ExtendedIntersection: extended,
				HasExtended:          hasExtended,
				JumpedThrough:        jumped,
				Distance:             distance,
			})
		}
	}
	return out
}
