package scape

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"evosim/internal/geom"
	"evosim/internal/model"
	"evosim/internal/world"
)

// RobotConfig describes one timed simulation run: the room, the robot's
// physical parameters, and how long a run lasts.
type RobotConfig struct {
	Room             *world.Room
	Radius           float64
	Steps            int
	MaxSpeed         float64
	MaxTurn          float64
	Start            geom.Vec
	Heading          float64
	CollisionPenalty float64
}

// RobotScape scores a genome by driving a simulated robot through the
// room. Genes decode to a cyclic sequence of (turn, throttle) commands;
// every step consults the collision engine, and a triggered wall cancels
// the move and counts one collision. Fitness is a cost: the reciprocal of
// distance traveled plus a penalty per collision.
type RobotScape struct {
	cfg  RobotConfig
	stop atomic.Bool
}

func NewRobotScape(cfg RobotConfig) (*RobotScape, error) {
	if cfg.Room == nil {
		return nil, fmt.Errorf("room is required")
	}
	if cfg.Radius <= 0 {
		return nil, fmt.Errorf("robot radius must be > 0")
	}
	if cfg.Steps <= 0 {
		return nil, fmt.Errorf("simulation steps must be > 0")
	}
	if cfg.MaxSpeed <= 0 {
		return nil, fmt.Errorf("max speed must be > 0")
	}
	if cfg.MaxTurn < 0 {
		return nil, fmt.Errorf("max turn must be >= 0")
	}
	if cfg.CollisionPenalty < 0 {
		return nil, fmt.Errorf("collision penalty must be >= 0")
	}
	return &RobotScape{cfg: cfg}, nil
}

func (s *RobotScape) Name() string {
	return "robot:" + s.cfg.Room.Name
}

// Stop requests early termination of in-flight and future runs. Each run
// checks the flag once per simulated step; already-simulated steps still
// count toward the outcome.
func (s *RobotScape) Stop() {
	s.stop.Store(true)
}

func (s *RobotScape) Evaluate(ctx context.Context, genome model.Genome) (float64, Trace, error) {
	commands := len(genome.Genes) / 2
	if commands == 0 {
		return 0, nil, fmt.Errorf("genome %s encodes no commands", genome.ID)
	}

	pos := s.cfg.Start
	heading := s.cfg.Heading
	distance := 0.0
	collisions := 0
	steps := 0

	for step := 0; step < s.cfg.Steps; step++ {
		if s.stop.Load() {
			break
		}
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}

		turn := geom.Clamp(genome.Genes[2*(step%commands)], -1, 1) * s.cfg.MaxTurn
		throttle := geom.Clamp(genome.Genes[2*(step%commands)+1], 0, 1) * s.cfg.MaxSpeed
		heading += turn
		next := pos.Add(geom.Vec{X: math.Cos(heading), Y: math.Sin(heading)}.Scale(throttle))

		if events := s.cfg.Room.Collides(pos, next, s.cfg.Radius); len(events) > 0 {
			collisions++
		} else {
			distance += geom.Dist(pos, next)
			pos = next
		}
		steps++
	}

	fitness := 1/(distance+1e-3) + float64(collisions)*s.cfg.CollisionPenalty
	return fitness, Trace{
		"distance":   distance,
		"collisions": collisions,
		"steps":      steps,
		"final_x":    pos.X,
		"final_y":    pos.Y,
	}, nil
}
