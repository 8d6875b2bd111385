package protocol

import "github.com/Ko-stant/hex-fov-engine/internal/geometry"

type Snapshot struct {
	BoardID         string               `json:"boardId"`
	BoardName       string               `json:"boardName"`
	BoardRadius     int                  `json:"boardRadius"`
	Walls           []geometry.HexCoords `json:"walls"`
	Observer        geometry.HexCoords   `json:"observer"`
	Radius          int                  `json:"radius"`
	Visible         []geometry.HexCoords `json:"visible"`
	LastEventID     int64                `json:"lastEventId"`
	Variables       map[string]any       `json:"variables"`
	ProtocolVersion string               `json:"protocolVersion"`
}
