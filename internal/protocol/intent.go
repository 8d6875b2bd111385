package protocol

import (
	"encoding/json"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
)

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestFieldOfView moves the observer and asks for a fresh sweep.
// A zero Radius keeps the current radius.
type RequestFieldOfView struct {
	Observer geometry.HexCoords `json:"observer"`
	Radius   int                `json:"radius,omitempty"`
}

type RequestToggleWall struct {
	Cell geometry.HexCoords `json:"cell"`
}

type RequestSnapshot struct {
}
