package world

import (
	"math/rand"
	"sort"
	"testing"

	"evosim/internal/geom"
)

func thinWallRoom() *Room {
	// A single thin vertical wall with no extension, standing alone.
	wall := NewBoundary(geom.Vec{X: 50, Y: -1}, geom.Vec{X: 50, Y: 1}, 0)
	return NewRoom("thin", 100, 100, []Boundary{wall})
}

func TestCollidesJumpedThrough(t *testing.T) {
	room := thinWallRoom()

	events := room.Collides(geom.Vec{X: 0, Y: 0}, geom.Vec{X: 100, Y: 0}, 1)
	if len(events) != 1 {
		t.Fatalf("expected exactly one collision, got %d", len(events))
	}
	ev := events[0]
	if !ev.JumpedThrough {
		t.Fatal("fast step across a thin wall must report jumped_through")
	}
	if !ev.HasTrue {
		t.Fatal("expected a true intersection with the visual segment")
	}
	if !almostEqual(ev.TrueIntersection.X, 50) || !almostEqual(ev.TrueIntersection.Y, 0) {
		t.Fatalf("expected crossing at (50,0), got %+v", ev.TrueIntersection)
	}
	if ev.Span != geom.SpanInside {
		t.Fatalf("mover starts within the wall's span, got %v", ev.Span)
	}
}

func TestCollidesProximityWithoutCrossing(t *testing.T) {
	room := thinWallRoom()

	// Approach to within the radius but do not cross.
	events := room.Collides(geom.Vec{X: 40, Y: 0}, geom.Vec{X: 48, Y: 0}, 5)
	if len(events) != 1 {
		t.Fatalf("expected one proximity collision, got %d", len(events))
	}
	if events[0].JumpedThrough {
		t.Fatal("no crossing happened, jumped_through must be false")
	}
	if !almostEqual(events[0].Distance, 2) {
		t.Fatalf("expected distance 2, got %v", events[0].Distance)
	}
}

func TestCollidesNoEventWhenFar(t *testing.T) {
	room := thinWallRoom()

	if events := room.Collides(geom.Vec{X: 10, Y: 10}, geom.Vec{X: 20, Y: 10}, 1); len(events) != 0 {
		t.Fatalf("expected no events far from the wall, got %d", len(events))
	}
}

func TestCollidesParallelGraze(t *testing.T) {
	// Horizontal wall with a generous collision extension past both ends.
	wall := NewBoundary(geom.Vec{X: 0, Y: 0}, geom.Vec{X: 10, Y: 0}, 5)
	room := NewRoom("graze", 100, 100, []Boundary{wall})

	// Moving exactly parallel to the wall, ending past its endpoint but
	// outside its visual span and outside the radius. No event.
	events := room.Collides(geom.Vec{X: 8, Y: 3}, geom.Vec{X: 14, Y: 3}, 2)
	if len(events) != 0 {
		t.Fatalf("parallel graze past the endpoint must not collide, got %d events", len(events))
	}

	// Crossing only the extension, with no motion component along the
	// wall, is the suppressed endpoint false positive: without the skip
	// the extended hit would count as jumped-through.
	events = room.Collides(geom.Vec{X: 12, Y: 3}, geom.Vec{X: 12, Y: -3}, 2)
	if len(events) != 0 {
		t.Fatalf("extension-only crossing must be suppressed, got %d events", len(events))
	}

	// The same transverse step against the visual span itself still hits.
	events = room.Collides(geom.Vec{X: 5, Y: 3}, geom.Vec{X: 5, Y: -3}, 2)
	if len(events) != 1 {
		t.Fatalf("crossing the wall proper must collide, got %d events", len(events))
	}
	if !events[0].JumpedThrough {
		t.Fatal("full crossing must report jumped_through")
	}
}

func TestCollidesCornerTriggersBothWalls(t *testing.T) {
	a := NewBoundary(geom.Vec{X: 0, Y: 0}, geom.Vec{X: 20, Y: 0}, 0)
	b := NewBoundary(geom.Vec{X: 20, Y: 0}, geom.Vec{X: 20, Y: 20}, 0)
	room := NewRoom("corner", 100, 100, []Boundary{a, b})

	// Diagonal step into the corner comes within radius of both walls.
	events := room.Collides(geom.Vec{X: 14, Y: 6}, geom.Vec{X: 18, Y: 2}, 3)
	if len(events) != 2 {
		t.Fatalf("expected both corner walls to trigger, got %d", len(events))
	}
}

func TestCollidesZeroLengthStep(t *testing.T) {
	room := thinWallRoom()

	// Standing still within radius of the wall still reports proximity,
	// with no intersections and no jump.
	events := room.Collides(geom.Vec{X: 49, Y: 0}, geom.Vec{X: 49, Y: 0}, 2)
	if len(events) != 1 {
		t.Fatalf("expected one proximity event, got %d", len(events))
	}
	if events[0].HasTrue || events[0].HasExtended || events[0].JumpedThrough {
		t.Fatalf("zero-length step must not intersect anything: %+v", events[0])
	}
}

func TestCollidesDegenerateWall(t *testing.T) {
	point := NewBoundary(geom.Vec{X: 5, Y: 5}, geom.Vec{X: 5, Y: 5}, 3)
	room := NewRoom("degenerate", 10, 10, []Boundary{point})

	// Far away: nothing. Close: the distance check still works because
	// the degenerate segment measures to its single point.
	if events := room.Collides(geom.Vec{X: 0, Y: 0}, geom.Vec{X: 1, Y: 0}, 1); len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
	if events := room.Collides(geom.Vec{X: 4, Y: 5}, geom.Vec{X: 4.5, Y: 5}, 1); len(events) != 1 {
		t.Fatalf("expected one proximity event, got %d", len(events))
	}
}

func TestBoundaryExtension(t *testing.T) {
	b := NewBoundary(geom.Vec{X: 2, Y: 0}, geom.Vec{X: 8, Y: 0}, 2)
	if !almostEqual(b.ColStart.X, 0) || !almostEqual(b.ColEnd.X, 10) {
		t.Fatalf("collision segment not extended symmetrically: %+v %+v", b.ColStart, b.ColEnd)
	}
	if !almostEqual(b.Length(), 6) {
		t.Fatalf("visual length changed: %v", b.Length())
	}
}

func TestRandomStartStaysInsidePadding(t *testing.T) {
	room := EmptyRoom(100, 60, 0)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		p := room.RandomStart(rng, 10)
		if p.X < 10 || p.X > 90 || p.Y < 10 || p.Y > 50 {
			t.Fatalf("start %+v violates radius padding", p)
		}
	}
}

func TestLayoutsAllBuildable(t *testing.T) {
	names := Layouts()
	if len(names) == 0 {
		t.Fatal("no layouts registered")
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("layouts not sorted: %v", names)
	}
	for _, name := range names {
		room, err := BuildRoom(name, 100, 100, 5)
		if err != nil {
			t.Fatalf("layout %s: %v", name, err)
		}
		if room.Name != name {
			t.Fatalf("layout %s built room named %s", name, room.Name)
		}
	}
}

func TestBuildRoomUnknownLayout(t *testing.T) {
	if _, err := BuildRoom("labyrinth", 10, 10, 0); err == nil {
		t.Fatal("expected error for unknown layout")
	}
	room, err := BuildRoom("", 800, 600, 10)
	if err != nil {
		t.Fatalf("default layout: %v", err)
	}
	if len(room.Walls) != 6 {
		t.Fatalf("default room should have 4 outer + 2 interior walls, got %d", len(room.Walls))
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
