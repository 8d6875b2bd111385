package main

import (
	"context"
	"testing"
	"time"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
	"github.com/Ko-stant/hex-fov-engine/internal/protocol"
)

// stepClock advances by step every time it is read.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestInstrumentedViewEngine_PreviewSplitsTimeEvenly(t *testing.T) {
	// Arrange
	engine := &MockViewEngine{
		previews: []protocol.FieldOfViewComputed{
			{Visible: make([]geometry.HexCoords, 4)},
			{Visible: make([]geometry.HexCoords, 5)},
			{Visible: make([]geometry.HexCoords, 6)},
		},
	}
	metrics := NewPerformanceMetrics()
	instrumented := NewInstrumentedViewEngine(engine, metrics)
	clock := &stepClock{step: 30 * time.Millisecond}
	instrumented.now = clock.now

	// Act
	if _, err := instrumented.Preview(context.Background(), nil, 0); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Assert
	if metrics.SweepsRun != 3 {
		t.Errorf("Expected 3 sweeps tracked, got %d", metrics.SweepsRun)
	}
	if metrics.CellsVisible != 15 {
		t.Errorf("Expected 15 cells tracked, got %d", metrics.CellsVisible)
	}
	if metrics.AvgSweepTime != 10*time.Millisecond {
		t.Errorf("Expected each preview to get a 10ms share, got %v", metrics.AvgSweepTime)
	}
}

func TestInstrumentedViewEngine_TracksRequests(t *testing.T) {
	engine := &MockViewEngine{
		fovResult:    &protocol.FieldOfViewComputed{Visible: make([]geometry.HexCoords, 7)},
		toggleResult: &ToggleResult{},
	}
	metrics := NewPerformanceMetrics()
	instrumented := NewInstrumentedViewEngine(engine, metrics)
	clock := &stepClock{step: time.Millisecond}
	instrumented.now = clock.now

	if _, err := instrumented.ProcessFieldOfView(protocol.RequestFieldOfView{}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, err := instrumented.ProcessToggleWall(protocol.RequestToggleWall{}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if metrics.SweepsRun != 1 || metrics.CellsVisible != 7 || metrics.AvgSweepTime != time.Millisecond {
		t.Errorf("Unexpected sweep metrics: runs %d cells %d avg %v", metrics.SweepsRun, metrics.CellsVisible, metrics.AvgSweepTime)
	}
	if metrics.WallsToggled != 1 || metrics.AvgToggleTime != time.Millisecond {
		t.Errorf("Unexpected toggle metrics: toggled %d avg %v", metrics.WallsToggled, metrics.AvgToggleTime)
	}
}
