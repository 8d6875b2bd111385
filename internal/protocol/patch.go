package protocol

import "github.com/Ko-stant/hex-fov-engine/internal/geometry"

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	EventID  int64  `json:"eventId"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type VariablesChanged struct {
	Entries map[string]any `json:"entries"`
}

type FieldOfViewComputed struct {
	Observer geometry.HexCoords   `json:"observer"`
	Radius   int                  `json:"radius"`
	Visible  []geometry.HexCoords `json:"visible"`
}

type WallToggled struct {
	Cell   geometry.HexCoords `json:"cell"`
	Opaque bool               `json:"opaque"`
}

type RequestRejected struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
