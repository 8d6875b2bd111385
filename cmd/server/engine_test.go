package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
	"github.com/Ko-stant/hex-fov-engine/internal/protocol"
)

// Mock implementations for testing
type MockLogger struct {
	messages []string
}

func (m *MockLogger) Printf(format string, v ...interface{}) {
	m.messages = append(m.messages, format)
}

type MockVisibilityCalculator struct {
	visible   []geometry.HexCoords
	err       error
	calls     int
	manyCalls int
}

func (m *MockVisibilityCalculator) ComputeVisible(board *geometry.HexBoard, observer geometry.HexCoords, radius int) ([]geometry.HexCoords, error) {
	m.calls++
	return m.visible, m.err
}

func (m *MockVisibilityCalculator) ComputeMany(ctx context.Context, board *geometry.HexBoard, observers []geometry.HexCoords, radius int) (map[geometry.HexCoords][]geometry.HexCoords, error) {
	m.manyCalls++
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[geometry.HexCoords][]geometry.HexCoords, len(observers))
	for _, o := range observers {
		out[o] = m.visible
	}
	return out, nil
}

func newTestEngine(t *testing.T, boardRadius, radius int) *ViewEngineImpl {
	t.Helper()
	board := geometry.NewHexBoard("test", boardRadius)
	engine, err := NewViewEngine(board, radius, 8, NewVisibilityCalculator(&MockLogger{}, false), &MockLogger{})
	if err != nil {
		t.Fatalf("Expected no error creating engine, got: %v", err)
	}
	return engine
}

func containsHex(cells []geometry.HexCoords, hex geometry.HexCoords) bool {
	for _, c := range cells {
		if c == hex {
			return true
		}
	}
	return false
}

func TestViewEngine_InitialView(t *testing.T) {
	engine := newTestEngine(t, 2, 8)

	snap := engine.Snapshot()
	if snap.Observer != (geometry.HexCoords{}) {
		t.Errorf("Expected observer at origin, got %s", snap.Observer)
	}
	if len(snap.Visible) != 19 {
		t.Errorf("Expected 19 visible cells on an open radius-2 board, got %d", len(snap.Visible))
	}
	if snap.ProtocolVersion != protocolVersion {
		t.Errorf("Expected protocol version %s, got %s", protocolVersion, snap.ProtocolVersion)
	}
	if snap.Variables["maxRadius"] != 8 {
		t.Errorf("Expected maxRadius 8 in variables, got %v", snap.Variables["maxRadius"])
	}
}

func TestViewEngine_ProcessFieldOfView(t *testing.T) {
	engine := newTestEngine(t, 3, 3)

	result, err := engine.ProcessFieldOfView(protocol.RequestFieldOfView{Observer: geometry.HexCoords{I: 1, J: 1}, Radius: 1})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Radius != 1 || result.Observer != (geometry.HexCoords{I: 1, J: 1}) {
		t.Errorf("Unexpected result header: %+v", result)
	}
	if len(result.Visible) != 7 {
		t.Errorf("Expected 7 visible cells at radius 1, got %d", len(result.Visible))
	}
	if snap := engine.Snapshot(); snap.Radius != 1 || len(snap.Visible) != 7 {
		t.Errorf("Expected snapshot to follow the new view, got radius %d with %d cells", snap.Radius, len(snap.Visible))
	}
}

func TestViewEngine_ProcessFieldOfView_ZeroRadiusKeepsCurrent(t *testing.T) {
	engine := newTestEngine(t, 3, 2)

	result, err := engine.ProcessFieldOfView(protocol.RequestFieldOfView{Observer: geometry.HexCoords{I: -1, J: 0}})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Radius != 2 {
		t.Errorf("Expected radius 2 to be kept, got %d", result.Radius)
	}
}

func TestViewEngine_ProcessFieldOfView_Rejections(t *testing.T) {
	engine := newTestEngine(t, 2, 2)
	engine.board.Opaque[geometry.HexCoords{I: 1, J: 0}] = true

	tests := []struct {
		name string
		req  protocol.RequestFieldOfView
		code string
	}{
		{"radius too large", protocol.RequestFieldOfView{Radius: 9}, CodeBadRadius},
		{"negative radius", protocol.RequestFieldOfView{Radius: -1}, CodeBadRadius},
		{"off board", protocol.RequestFieldOfView{Observer: geometry.HexCoords{I: 3, J: 0}}, CodeOffBoard},
		{"inside a wall", protocol.RequestFieldOfView{Observer: geometry.HexCoords{I: 1, J: 0}}, CodeObserverWall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ProcessFieldOfView(tt.req)
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("Expected RequestError, got: %v", err)
			}
			if reqErr.Code != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, reqErr.Code)
			}
		})
	}

	if snap := engine.Snapshot(); snap.Observer != (geometry.HexCoords{}) || snap.Radius != 2 {
		t.Errorf("Expected rejected requests to leave the view alone, got observer %s radius %d", snap.Observer, snap.Radius)
	}
}

func TestViewEngine_ProcessFieldOfView_RollsBackOnFailure(t *testing.T) {
	calc := &MockVisibilityCalculator{visible: []geometry.HexCoords{{}}}
	engine, err := NewViewEngine(geometry.NewHexBoard("test", 3), 2, 8, calc, &MockLogger{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	calc.err = errors.New("sweep failed")
	if _, err := engine.ProcessFieldOfView(protocol.RequestFieldOfView{Observer: geometry.HexCoords{I: 1, J: 1}, Radius: 3}); err == nil {
		t.Fatal("Expected the calculator error to surface")
	}
	if snap := engine.Snapshot(); snap.Observer != (geometry.HexCoords{}) || snap.Radius != 2 {
		t.Errorf("Expected rollback to origin radius 2, got %s radius %d", snap.Observer, snap.Radius)
	}
}

func TestViewEngine_ProcessToggleWall(t *testing.T) {
	engine := newTestEngine(t, 3, 3)
	wall := geometry.HexCoords{I: 0, J: 1}
	behind := geometry.HexCoords{I: 0, J: 2}

	result, err := engine.ProcessToggleWall(protocol.RequestToggleWall{Cell: wall})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !result.Toggled.Opaque || result.Toggled.Cell != wall {
		t.Errorf("Expected %s to become opaque, got %+v", wall, result.Toggled)
	}
	if !containsHex(result.FieldOfView.Visible, wall) {
		t.Errorf("Expected the wall itself to stay visible")
	}
	if containsHex(result.FieldOfView.Visible, behind) {
		t.Errorf("Expected %s to be hidden behind %s", behind, wall)
	}

	result, err = engine.ProcessToggleWall(protocol.RequestToggleWall{Cell: wall})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Toggled.Opaque {
		t.Errorf("Expected second toggle to clear the wall")
	}
	if len(result.FieldOfView.Visible) != 37 {
		t.Errorf("Expected 37 visible cells once the wall is gone, got %d", len(result.FieldOfView.Visible))
	}
}

func TestViewEngine_ProcessToggleWall_Rejections(t *testing.T) {
	engine := newTestEngine(t, 2, 2)

	_, err := engine.ProcessToggleWall(protocol.RequestToggleWall{Cell: geometry.HexCoords{}})
	var reqErr *RequestError
	if !errors.As(err, &reqErr) || reqErr.Code != CodeObserverWall {
		t.Errorf("Expected OBSERVER_WALL, got: %v", err)
	}

	_, err = engine.ProcessToggleWall(protocol.RequestToggleWall{Cell: geometry.HexCoords{I: 5, J: 5}})
	if !errors.As(err, &reqErr) || reqErr.Code != CodeOffBoard {
		t.Errorf("Expected OFF_BOARD, got: %v", err)
	}
}

func TestViewEngine_ProcessToggleWall_RestoresWallOnFailure(t *testing.T) {
	calc := &MockVisibilityCalculator{visible: []geometry.HexCoords{{}}}
	engine, err := NewViewEngine(geometry.NewHexBoard("test", 3), 2, 8, calc, &MockLogger{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	calc.err = errors.New("sweep failed")
	cell := geometry.HexCoords{I: 1, J: 2}
	if _, err := engine.ProcessToggleWall(protocol.RequestToggleWall{Cell: cell}); err == nil {
		t.Fatal("Expected the calculator error to surface")
	}
	if engine.board.Opaque[cell] {
		t.Errorf("Expected %s to be clear again after the failed toggle", cell)
	}
}

func TestViewEngine_Preview(t *testing.T) {
	engine := newTestEngine(t, 3, 2)
	engine.board.Opaque[geometry.HexCoords{I: 0, J: 1}] = true

	observers := []geometry.HexCoords{{I: 0, J: 0}, {I: 2, J: 1}, {I: -1, J: -2}}
	views, err := engine.Preview(context.Background(), observers, 1)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(views) != len(observers) {
		t.Fatalf("Expected %d views, got %d", len(observers), len(views))
	}
	for i, v := range views {
		if v.Observer != observers[i] {
			t.Errorf("Expected view %d for %s, got %s", i, observers[i], v.Observer)
		}
		if v.Radius != 1 {
			t.Errorf("Expected radius 1, got %d", v.Radius)
		}
		if !containsHex(v.Visible, observers[i]) {
			t.Errorf("Expected %s to see itself", observers[i])
		}
	}

	if snap := engine.Snapshot(); snap.Observer != (geometry.HexCoords{}) || snap.Radius != 2 {
		t.Errorf("Expected preview to leave the view alone, got %s radius %d", snap.Observer, snap.Radius)
	}
}

func TestViewEngine_Preview_RejectsBadObserver(t *testing.T) {
	engine := newTestEngine(t, 2, 2)

	_, err := engine.Preview(context.Background(), []geometry.HexCoords{{}, {I: 4, J: 0}}, 0)
	if err == nil || !strings.Contains(err.Error(), CodeOffBoard) {
		t.Errorf("Expected OFF_BOARD error, got: %v", err)
	}
}

func TestViewEngine_RegionsFollowWalls(t *testing.T) {
	board := geometry.NewHexBoard("ring", 3)
	for _, hex := range geometry.Ring(geometry.HexCoords{}, 1) {
		board.Opaque[hex] = true
	}
	logger := &MockLogger{}
	engine, err := NewViewEngine(board, 3, 8, NewVisibilityCalculator(logger, false), logger)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := engine.Snapshot().Variables["regions"]; got != 2 {
		t.Fatalf("Expected 2 regions inside and outside the ring, got %v", got)
	}
	if got := len(engine.Snapshot().Visible); got != 7 {
		t.Errorf("Expected the observer to see only the ring, got %d cells", got)
	}

	logger.messages = nil
	if _, err := engine.ProcessToggleWall(protocol.RequestToggleWall{Cell: geometry.HexCoords{I: 1, J: 0}}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := engine.Snapshot().Variables["regions"]; got != 1 {
		t.Errorf("Expected the gap to join the regions, got %v", got)
	}
	joined := false
	for _, msg := range logger.messages {
		if msg == "clearing %s joined regions %v" {
			joined = true
		}
	}
	if !joined {
		t.Errorf("Expected the join to be logged, got %v", logger.messages)
	}
}

func TestViewEngine_Preview_UsesVisibilityCalculator(t *testing.T) {
	calc := &MockVisibilityCalculator{visible: []geometry.HexCoords{{}, {I: 0, J: 1}}}
	engine, err := NewViewEngine(geometry.NewHexBoard("test", 3), 2, 8, calc, &MockLogger{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	views, err := engine.Preview(context.Background(), []geometry.HexCoords{{}, {I: 1, J: 1}}, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if calc.manyCalls != 1 {
		t.Errorf("Expected one batched calculator call, got %d", calc.manyCalls)
	}
	for _, v := range views {
		if len(v.Visible) != 2 || v.Radius != 2 {
			t.Errorf("Expected the calculator's cells at radius 2, got %+v", v)
		}
	}

	calc.err = errors.New("sweep failed")
	if _, err := engine.Preview(context.Background(), []geometry.HexCoords{{}}, 0); err == nil {
		t.Error("Expected the calculator error to surface")
	}
}
