package geometry

func DevBoard() *HexBoard {
	board := NewHexBoard("dev-board-0", 10)
	board.Name = "Dev board"

	// A pillar next to the centre, leaving a shadow to the north-east.
	board.Opaque[HexCoords{I: 1, J: 2}] = true

	// Broken ring at range 5 with a gap along the J axis.
	for _, hex := range Ring(HexCoords{}, 5) {
		if hex.I == 0 && hex.J > 0 {
			continue
		}
		if hex.I%2 == 0 {
			board.Opaque[hex] = true
		}
	}

	// Solid wall segment to the south.
	for i := -3; i <= 3; i++ {
		board.Opaque[HexCoords{I: i, J: -7}] = true
	}

	return board
}

// Ring returns the cells at exactly radius from centre, walking the six sides.
func Ring(centre HexCoords, radius int) []HexCoords {
	if radius == 0 {
		return []HexCoords{centre}
	}
	out := make([]HexCoords, 0, 6*radius)
	// Start on the -I axis and walk so each side steps along one neighbour offset.
	hex := HexCoords{I: centre.I - radius, J: centre.J - radius}
	for side := range 6 {
		d := neighbourOffsets[side]
		for range radius {
			out = append(out, hex)
			hex = HexCoords{I: hex.I + d.I, J: hex.J + d.J}
		}
	}
	return out
}
