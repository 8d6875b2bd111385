package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync/atomic"

	"github.com/Ko-stant/hex-fov-engine/internal/protocol"
	"github.com/Ko-stant/hex-fov-engine/internal/ws"
)

// BroadcasterImpl implements Broadcaster using WebSocket hub
type BroadcasterImpl struct {
	hub      *ws.Hub
	sequence SequenceGenerator
}

func NewBroadcaster(hub *ws.Hub, sequence SequenceGenerator) *BroadcasterImpl {
	return &BroadcasterImpl{
		hub:      hub,
		sequence: sequence,
	}
}

func (b *BroadcasterImpl) BroadcastEvent(eventType string, payload interface{}) {
	data, err := encodePatch(b.sequence.Next(), eventType, payload)
	if err != nil {
		log.Printf("failed to marshal %s: %v", eventType, err)
		return
	}
	log.Printf("broadcasting %s", eventType)
	b.hub.Broadcast(context.Background(), data)
}

func encodePatch(seq uint64, eventType string, payload interface{}) ([]byte, error) {
	return json.Marshal(protocol.PatchEnvelope{
		Sequence: seq,
		EventID:  0,
		Type:     eventType,
		Payload:  payload,
	})
}

// LoggerImpl implements Logger using standard log package
type LoggerImpl struct{}

func NewLogger() *LoggerImpl {
	return &LoggerImpl{}
}

func (l *LoggerImpl) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// SequenceGeneratorImpl implements SequenceGenerator using atomic counter
type SequenceGeneratorImpl struct {
	counter uint64
}

func NewSequenceGenerator() *SequenceGeneratorImpl {
	return &SequenceGeneratorImpl{}
}

func (sg *SequenceGeneratorImpl) Next() uint64 {
	return atomic.AddUint64(&sg.counter, 1)
}

func (sg *SequenceGeneratorImpl) Current() uint64 {
	return atomic.LoadUint64(&sg.counter)
}

// TestableHandlers uses dependency injection for better testability
type TestableHandlers struct {
	engine      ViewEngine
	broadcaster Broadcaster
	logger      Logger
}

func NewTestableHandlers(engine ViewEngine, broadcaster Broadcaster, logger Logger) *TestableHandlers {
	return &TestableHandlers{
		engine:      engine,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (h *TestableHandlers) HandleRequestFieldOfView(req protocol.RequestFieldOfView) error {
	result, err := h.engine.ProcessFieldOfView(req)
	if err != nil {
		h.logger.Printf("Field of view failed: %v", err)
		return err
	}
	h.broadcaster.BroadcastEvent("FieldOfViewComputed", *result)
	return nil
}

func (h *TestableHandlers) HandleRequestToggleWall(req protocol.RequestToggleWall) error {
	result, err := h.engine.ProcessToggleWall(req)
	if err != nil {
		h.logger.Printf("Wall toggle failed: %v", err)
		return err
	}

	h.broadcaster.BroadcastEvent("WallToggled", result.Toggled)
	if result.FieldOfView != nil {
		h.broadcaster.BroadcastEvent("FieldOfViewComputed", *result.FieldOfView)
	}
	return nil
}

func (h *TestableHandlers) HandleWebSocketMessage(data []byte) error {
	var env protocol.IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return &RequestError{Code: CodeBadPayload, Message: err.Error()}
	}

	switch env.Type {
	case "RequestFieldOfView":
		var req protocol.RequestFieldOfView
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return &RequestError{Code: CodeBadPayload, Message: err.Error()}
		}
		return h.HandleRequestFieldOfView(req)

	case "RequestToggleWall":
		var req protocol.RequestToggleWall
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return &RequestError{Code: CodeBadPayload, Message: err.Error()}
		}
		return h.HandleRequestToggleWall(req)

	default:
		h.logger.Printf("Unknown message type: %s", env.Type)
		return &RequestError{Code: CodeUnknownIntent, Message: env.Type}
	}
}

// rejection turns a handler error into the payload sent back to the viewer
func rejection(err error) protocol.RequestRejected {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return protocol.RequestRejected{Code: reqErr.Code, Message: reqErr.Message}
	}
	return protocol.RequestRejected{Code: "INTERNAL", Message: err.Error()}
}
