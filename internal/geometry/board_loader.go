package geometry

import (
	"encoding/json"
	"fmt"
	"os"
)

// CellCoordinate is a single cell position in a board file
type CellCoordinate struct {
	I int `json:"i"`
	J int `json:"j"`
}

// BoardDefinition represents the static board layout
type BoardDefinition struct {
	ID     string           `json:"id" jsonschema:"title=Board id,pattern=^[a-z0-9\-]+$"`
	Name   string           `json:"name" jsonschema:"description=Display name shown above the board"`
	Radius int              `json:"radius" jsonschema:"minimum=0,description=Cells further than this from (0,0) are off board"`
	Walls  []CellCoordinate `json:"walls" jsonschema:"description=Opaque cells, each within the radius"`
}

// LoadBoardFromFile loads a board definition from a JSON file
func LoadBoardFromFile(filepath string) (*BoardDefinition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}
	return ParseBoard(data)
}

// ParseBoard decodes and validates a board definition
func ParseBoard(data []byte) (*BoardDefinition, error) {
	var board BoardDefinition
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("failed to parse board JSON: %w", err)
	}
	if board.Radius < 0 {
		return nil, fmt.Errorf("board %q: negative radius %d", board.ID, board.Radius)
	}
	origin := HexCoords{}
	for _, w := range board.Walls {
		hex := HexCoords{I: w.I, J: w.J}
		if Distance(hex, origin) > board.Radius {
			return nil, fmt.Errorf("board %q: wall %s outside radius %d", board.ID, hex, board.Radius)
		}
	}
	return &board, nil
}

// CreateBoard converts a BoardDefinition into a HexBoard
func CreateBoard(def *BoardDefinition) *HexBoard {
	board := NewHexBoard(def.ID, def.Radius)
	board.Name = def.Name
	for _, w := range def.Walls {
		board.Opaque[HexCoords{I: w.I, J: w.J}] = true
	}
	return board
}
