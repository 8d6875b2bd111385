package main

import (
	"context"

	"github.com/Ko-stant/hex-fov-engine/internal/fov"
	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
)

// VisibilityCalculatorImpl implements VisibilityCalculator with the shadow-casting sweep
type VisibilityCalculatorImpl struct {
	logger Logger
	trace  bool
}

func NewVisibilityCalculator(logger Logger, trace bool) *VisibilityCalculatorImpl {
	return &VisibilityCalculatorImpl{logger: logger, trace: trace}
}

func (vc *VisibilityCalculatorImpl) ComputeVisible(board *geometry.HexBoard, observer geometry.HexCoords, radius int) ([]geometry.HexCoords, error) {
	seen := make(map[geometry.HexCoords]struct{})
	err := fov.ComputeWithOptions(board, observer, radius, func(hex geometry.HexCoords) {
		seen[hex] = struct{}{}
	}, vc.options())
	if err != nil {
		return nil, err
	}
	return fov.SortedCells(seen), nil
}

// ComputeMany sweeps every observer in parallel with the same options as
// ComputeVisible. The logger must be safe for concurrent use.
func (vc *VisibilityCalculatorImpl) ComputeMany(ctx context.Context, board *geometry.HexBoard, observers []geometry.HexCoords, radius int) (map[geometry.HexCoords][]geometry.HexCoords, error) {
	return fov.ComputeManyWithOptions(ctx, board, observers, radius, vc.options())
}

func (vc *VisibilityCalculatorImpl) options() fov.Options {
	if !vc.trace {
		return fov.Options{}
	}
	return fov.Options{Tracer: vc.logger, Strict: true}
}
