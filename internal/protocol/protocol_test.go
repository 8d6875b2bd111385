package protocol

import (
	"encoding/json"
	"testing"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
)

func TestIntentEnvelope_DecodesFieldOfViewRequest(t *testing.T) {
	data := []byte(`{"type":"RequestFieldOfView","payload":{"observer":{"i":2,"j":-1},"radius":6}}`)

	var env IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("Failed to unmarshal envelope: %v", err)
	}
	if env.Type != "RequestFieldOfView" {
		t.Fatalf("Expected type RequestFieldOfView, got %s", env.Type)
	}

	var req RequestFieldOfView
	if err := json.Unmarshal(env.Payload, &req); err != nil {
		t.Fatalf("Failed to unmarshal payload: %v", err)
	}
	if req.Observer != (geometry.HexCoords{I: 2, J: -1}) || req.Radius != 6 {
		t.Errorf("Expected observer (2,-1) radius 6, got %s radius %d", req.Observer, req.Radius)
	}
}

func TestRequestFieldOfView_RadiusOmittedWhenZero(t *testing.T) {
	data, err := json.Marshal(RequestFieldOfView{Observer: geometry.HexCoords{I: 1, J: 1}})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if string(data) != `{"observer":{"i":1,"j":1}}` {
		t.Errorf("unexpected JSON: %s", data)
	}
}

func TestPatchEnvelope_WireShape(t *testing.T) {
	env := PatchEnvelope{
		Sequence: 3,
		Type:     "FieldOfViewComputed",
		Payload: FieldOfViewComputed{
			Observer: geometry.HexCoords{},
			Radius:   1,
			Visible:  []geometry.HexCoords{{I: 0, J: 0}, {I: 0, J: 1}},
		},
	}

	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	want := `{"seq":3,"eventId":0,"type":"FieldOfViewComputed","payload":{"observer":{"i":0,"j":0},"radius":1,"visible":[{"i":0,"j":0},{"i":0,"j":1}]}}`
	if string(data) != want {
		t.Errorf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}
