// Package fov computes hex field of view by recursive shadow casting.
//
// Every dodecant is swept in its own local frame, where rows are ranges
// from the observer and cones are bounded by exact integer vectors. The
// twelve geometry.Dodecants transforms map each local cell back onto the
// board.
package fov

import (
	"fmt"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
)

// Board is the read-only view of the grid the sweep needs.
type Board interface {
	IsOnboard(hex geometry.HexCoords) bool
	IsOpaque(hex geometry.HexCoords) bool
}

type Options struct {
	// Tracer logs every emitted cone with its split code. Nil disables it.
	Tracer Tracer
	// Strict validates the dodecant precondition on every cone before it is
	// scanned. Off by default; the sweep only ever builds valid cones.
	Strict bool
}

// Compute calls visit for every cell visible from origin within radius,
// origin included. A cell on a dodecant boundary may be visited more than once.
func Compute(board Board, origin geometry.HexCoords, radius int, visit func(geometry.HexCoords)) error {
	return ComputeWithOptions(board, origin, radius, visit, Options{})
}

func ComputeWithOptions(board Board, origin geometry.HexCoords, radius int, visit func(geometry.HexCoords), opts Options) error {
	if radius < 0 {
		return fmt.Errorf("fov: negative radius %d", radius)
	}
	if !board.IsOnboard(origin) {
		return fmt.Errorf("fov: observer %s is off board", origin)
	}
	visit(origin)
	for _, m := range geometry.Dodecants() {
		s := sweep{
			board:     board,
			transform: m.Translate(origin.I, origin.J),
			radius:    radius,
			visit:     visit,
			opts:      opts,
			seed:      SeedCone(),
		}
		if err := s.run(); err != nil {
			return fmt.Errorf("fov: observer %s: %w", origin, err)
		}
	}
	return nil
}

// Visible returns the set of cells visible from origin within radius.
func Visible(board Board, origin geometry.HexCoords, radius int) (map[geometry.HexCoords]struct{}, error) {
	seen := make(map[geometry.HexCoords]struct{})
	err := Compute(board, origin, radius, func(hex geometry.HexCoords) {
		seen[hex] = struct{}{}
	})
	if err != nil {
		return nil, err
	}
	return seen, nil
}

// SeedCone is the first cone of every dodecant: the whole wedge, starting at range 1.
func SeedCone() Cone {
	return Cone{Range: 1, Top: geometry.DodecantTop, Bottom: geometry.DodecantBottom, RiseRun: RiseRun{Rise: 0, Run: 1}}
}

type sweep struct {
	board     Board
	transform geometry.IntMatrix2D
	radius    int
	visit     func(geometry.HexCoords)
	opts      Options
	seed      Cone
	queue     Queue
}

// run checks the seed against the dodecant precondition, whatever the
// options say, then drains the queue. Later cones are only checked when
// Strict is set.
func (s *sweep) run() error {
	if err := s.seed.Validate(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	s.queue.Push(s.seed)
	for s.queue.Len() > 0 {
		cone, _ := s.queue.Pop()
		if cone.Range > s.radius {
			continue
		}
		if s.opts.Strict {
			if err := cone.Validate(); err != nil {
				return err
			}
		}
		if err := s.scanRow(cone); err != nil {
			return err
		}
	}
	return nil
}

// scanRow visits the cells of row cone.Range inside the cone and queues the
// clear spans that continue on the next row.
func (s *sweep) scanRow(cone Cone) error {
	y := cone.Range
	top := cone.Top
	bottom := cone.Bottom
	sink := s.queue.Sink()

	x, err := geometry.XFromVector(y, bottom)
	if err != nil {
		return err
	}
	// A first cell that only grazes bottom is not inside the cone.
	if geometry.LessOrEqual(geometry.TopCorner(geometry.HexCoords{I: x, J: y}), bottom) {
		x++
	}
	blocked := false
	for ; ; x++ {
		local := geometry.HexCoords{I: x, J: y}
		lower := geometry.BottomCorner(local)
		if geometry.LessOrEqual(top, lower) {
			break
		}
		hex := local.Transform(s.transform)
		onboard := s.board.IsOnboard(hex)
		if onboard {
			s.visit(hex)
		}
		if !onboard || s.board.IsOpaque(hex) {
			if !blocked {
				enqueue(s.opts.Tracer, sink, y, geometry.Min(top, lower), bottom, cone.RiseRun, CodeBlocked)
			}
			blocked = true
			bottom = geometry.Max(bottom, geometry.TopCorner(local))
			continue
		}
		blocked = false
	}
	enqueue(s.opts.Tracer, sink, y, top, bottom, cone.RiseRun, CodeRowEnd)
	return nil
}
