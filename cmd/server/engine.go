package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
	"github.com/Ko-stant/hex-fov-engine/internal/protocol"
)

const protocolVersion = "v1"

// ViewEngineImpl implements the ViewEngine interface
type ViewEngineImpl struct {
	mu         sync.Mutex
	board      *geometry.HexBoard
	observer   geometry.HexCoords
	radius     int
	maxRadius  int
	visible    []geometry.HexCoords
	visibility VisibilityCalculator
	logger     Logger
}

// NewViewEngine creates a view engine with the observer at the board centre
func NewViewEngine(board *geometry.HexBoard, radius, maxRadius int, visibility VisibilityCalculator, logger Logger) (*ViewEngineImpl, error) {
	e := &ViewEngineImpl{
		board:      board,
		radius:     radius,
		maxRadius:  maxRadius,
		visibility: visibility,
		logger:     logger,
	}
	if err := e.recompute(); err != nil {
		return nil, fmt.Errorf("initial field of view: %w", err)
	}
	return e, nil
}

func (e *ViewEngineImpl) ProcessFieldOfView(req protocol.RequestFieldOfView) (*protocol.FieldOfViewComputed, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	radius, err := e.checkRequestLocked(req.Observer, req.Radius)
	if err != nil {
		return nil, err
	}

	prevObserver, prevRadius := e.observer, e.radius
	e.observer, e.radius = req.Observer, radius
	if err := e.recompute(); err != nil {
		e.observer, e.radius = prevObserver, prevRadius
		return nil, err
	}
	e.logger.Printf("observer %s radius %d sees %d cells", e.observer, e.radius, len(e.visible))
	return e.computedLocked(), nil
}

func (e *ViewEngineImpl) ProcessToggleWall(req protocol.RequestToggleWall) (*ToggleResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if req.Cell == e.observer {
		return nil, &RequestError{Code: CodeObserverWall, Message: "cannot wall in the observer"}
	}
	var joined []int
	if e.board.Opaque[req.Cell] {
		joined = geometry.RegionsAcrossWall(geometry.BuildRegionMap(e.board), req.Cell)
	}
	opaque, ok := e.board.Toggle(req.Cell)
	if !ok {
		return nil, &RequestError{Code: CodeOffBoard, Message: fmt.Sprintf("cell %s is off board", req.Cell)}
	}
	if err := e.recompute(); err != nil {
		// Put the wall back so the board and the cached view stay in step.
		e.board.Toggle(req.Cell)
		return nil, err
	}
	e.logger.Printf("wall %s opaque=%v, observer now sees %d cells", req.Cell, opaque, len(e.visible))
	if len(joined) > 1 {
		e.logger.Printf("clearing %s joined regions %v", req.Cell, joined)
	}
	return &ToggleResult{
		Toggled:     protocol.WallToggled{Cell: req.Cell, Opaque: opaque},
		FieldOfView: e.computedLocked(),
	}, nil
}

func (e *ViewEngineImpl) Snapshot() protocol.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	regions := geometry.BuildRegionMap(e.board)
	return protocol.Snapshot{
		BoardID:         e.board.ID,
		BoardName:       e.board.Name,
		BoardRadius:     e.board.Radius,
		Walls:           e.board.Walls(),
		Observer:        e.observer,
		Radius:          e.radius,
		Visible:         append([]geometry.HexCoords(nil), e.visible...),
		Variables:       map[string]any{"maxRadius": e.maxRadius, "regions": regions.RegionsCount},
		ProtocolVersion: protocolVersion,
	}
}

func (e *ViewEngineImpl) Preview(ctx context.Context, observers []geometry.HexCoords, radius int) ([]protocol.FieldOfViewComputed, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, observer := range observers {
		r, err := e.checkRequestLocked(observer, radius)
		if err != nil {
			return nil, err
		}
		radius = r
	}

	views, err := e.visibility.ComputeMany(ctx, e.board, observers, radius)
	if err != nil {
		return nil, err
	}
	out := make([]protocol.FieldOfViewComputed, 0, len(observers))
	for _, observer := range observers {
		out = append(out, protocol.FieldOfViewComputed{Observer: observer, Radius: radius, Visible: views[observer]})
	}
	return out, nil
}

// checkRequestLocked resolves a zero radius to the current one and rejects
// observers the sweep cannot stand on.
func (e *ViewEngineImpl) checkRequestLocked(observer geometry.HexCoords, radius int) (int, error) {
	if radius == 0 {
		radius = e.radius
	}
	if radius < 0 || radius > e.maxRadius {
		return 0, &RequestError{Code: CodeBadRadius, Message: fmt.Sprintf("radius %d outside 0..%d", radius, e.maxRadius)}
	}
	if !e.board.IsOnboard(observer) {
		return 0, &RequestError{Code: CodeOffBoard, Message: fmt.Sprintf("observer %s is off board", observer)}
	}
	if e.board.Opaque[observer] {
		return 0, &RequestError{Code: CodeObserverWall, Message: fmt.Sprintf("observer %s is inside a wall", observer)}
	}
	return radius, nil
}

func (e *ViewEngineImpl) recompute() error {
	visible, err := e.visibility.ComputeVisible(e.board, e.observer, e.radius)
	if err != nil {
		return err
	}
	e.visible = visible
	return nil
}

func (e *ViewEngineImpl) computedLocked() *protocol.FieldOfViewComputed {
	return &protocol.FieldOfViewComputed{
		Observer: e.observer,
		Radius:   e.radius,
		Visible:  append([]geometry.HexCoords(nil), e.visible...),
	}
}
