package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
	"github.com/Ko-stant/hex-fov-engine/internal/protocol"
)

func main() {
	var outPath, kind string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.StringVar(&kind, "kind", "board", "schema to generate: board or intents")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	schema, err := buildSchema(kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build schema: %v\n", err)
		os.Exit(1)
	}

	if err := writeSchema(outPath, schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

// Typed stand-ins for protocol.IntentEnvelope, one per intent.
type fieldOfViewIntent struct {
	Type    string                      `json:"type" jsonschema:"enum=RequestFieldOfView"`
	Payload protocol.RequestFieldOfView `json:"payload"`
}

type toggleWallIntent struct {
	Type    string                     `json:"type" jsonschema:"enum=RequestToggleWall"`
	Payload protocol.RequestToggleWall `json:"payload"`
}

type snapshotIntent struct {
	Type    string                   `json:"type" jsonschema:"enum=RequestSnapshot"`
	Payload protocol.RequestSnapshot `json:"payload"`
}

func buildSchema(kind string) (*jsonschema.Schema, error) {
	switch kind {
	case "board":
		reflector := jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
		schema := reflector.Reflect(new(geometry.BoardDefinition))
		schema.Title = "Hex FOV Board"
		schema.Description = "Board layout loaded through BOARD_PATH"
		return schema, nil

	case "intents":
		reflector := jsonschema.Reflector{DoNotReference: true}
		var variants []*jsonschema.Schema
		for _, v := range []any{fieldOfViewIntent{}, toggleWallIntent{}, snapshotIntent{}} {
			s := reflector.ReflectFromType(reflect.TypeOf(v))
			if s == nil {
				return nil, fmt.Errorf("failed to reflect %T", v)
			}
			s.Version = ""
			variants = append(variants, s)
		}
		return &jsonschema.Schema{
			Version:     jsonschema.Version,
			Title:       "Hex FOV Viewer Intents",
			Description: "Messages a viewer may send on /stream",
			OneOf:       variants,
		}, nil

	default:
		return nil, fmt.Errorf("unknown schema kind %q", kind)
	}
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
