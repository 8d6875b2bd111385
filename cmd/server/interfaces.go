package main

import (
	"context"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
	"github.com/Ko-stant/hex-fov-engine/internal/protocol"
)

// Broadcaster interface for WebSocket communication
type Broadcaster interface {
	BroadcastEvent(eventType string, payload interface{})
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...interface{})
}

// SequenceGenerator interface for sequence number generation
type SequenceGenerator interface {
	Next() uint64
}

// ViewEngine owns the board and the observer and answers viewer requests
type ViewEngine interface {
	ProcessFieldOfView(req protocol.RequestFieldOfView) (*protocol.FieldOfViewComputed, error)
	ProcessToggleWall(req protocol.RequestToggleWall) (*ToggleResult, error)
	Snapshot() protocol.Snapshot
	// Preview sweeps from each observer without moving the current one
	Preview(ctx context.Context, observers []geometry.HexCoords, radius int) ([]protocol.FieldOfViewComputed, error)
}

// ToggleResult contains the results of a wall toggle
type ToggleResult struct {
	Toggled     protocol.WallToggled
	FieldOfView *protocol.FieldOfViewComputed
}

// VisibilityCalculator interface for field-of-view sweeps
type VisibilityCalculator interface {
	ComputeVisible(board *geometry.HexBoard, observer geometry.HexCoords, radius int) ([]geometry.HexCoords, error)
	ComputeMany(ctx context.Context, board *geometry.HexBoard, observers []geometry.HexCoords, radius int) (map[geometry.HexCoords][]geometry.HexCoords, error)
}
