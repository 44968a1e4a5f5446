package world

import (
	"fmt"
	"math/rand"
	"sort"

	"evosim/internal/geom"
)

// Room is a fixed, ordered set of boundary segments. It is immutable after
// construction.
type Room struct {
	Name   string
	Width  float64
	Height float64
	Walls  []Boundary
}

// NewRoom builds a room from an explicit wall list.
func NewRoom(name string, width, height float64, walls []Boundary) *Room {
	return &Room{Name: name, Width: width, Height: height, Walls: walls}
}

// EmptyRoom is a plain rectangle of four outer walls.
func EmptyRoom(width, height, extend float64) *Room {
	return &Room{
		Name:   "empty",
		Width:  width,
		Height: height,
		Walls:  rectangle(geom.Vec{X: 0, Y: 0}, width, height, extend),
	}
}

// DefaultRoom is the rectangle plus two interior obstacles: a horizontal
// wall jutting from the left side and a vertical wall rising from the
// bottom, forming a slalom between them.
func DefaultRoom(width, height, extend float64) *Room {
	walls := rectangle(geom.Vec{X: 0, Y: 0}, width, height, extend)
	walls = append(walls,
		NewBoundary(geom.Vec{X: 0, Y: height * 0.35}, geom.Vec{X: width * 0.6, Y: height * 0.35}, extend),
		NewBoundary(geom.Vec{X: width * 0.4, Y: height}, geom.Vec{X: width * 0.4, Y: height * 0.65}, extend),
	)
	return &Room{Name: "default", Width: width, Height: height, Walls: walls}
}

var layouts = map[string]func(width, height, extend float64) *Room{
	"default": DefaultRoom,
	"empty":   EmptyRoom,
}

// BuildRoom resolves a room layout by name. An empty name builds the
// default layout.
func BuildRoom(name string, width, height, extend float64) (*Room, error) {
	if name == "" {
		name = "default"
	}
	build, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown room layout: %s", name)
	}
	return build(width, height, extend), nil
}

// Layouts lists the layout names BuildRoom resolves, sorted.
func Layouts() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RandomStart picks a position inside the outer rectangle with radius
// padding on every side. Interior walls are not avoided; callers placing a
// mover should resolve the first step's collisions like any other.
func (r *Room) RandomStart(rng *rand.Rand, radius float64) geom.Vec {
	return geom.Vec{
		X: radius + rng.Float64()*(r.Width-2*radius),
		Y: radius + rng.Float64()*(r.Height-2*radius),
	}
}

func rectangle(origin geom.Vec, width, height, extend float64) []Boundary {
	tl := origin
	tr := geom.Vec{X: origin.X + width, Y: origin.Y}
	br := geom.Vec{X: origin.X + width, Y: origin.Y + height}
	bl := geom.Vec{X: origin.X, Y: origin.Y + height}
	return []Boundary{
		NewBoundary(tl, tr, extend),
		NewBoundary(tr, br, extend),
		NewBoundary(br, bl, extend),
		NewBoundary(bl, tl, extend),
	}
}
