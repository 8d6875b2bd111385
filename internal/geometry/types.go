package geometry

// HexBoard is a hexagon-shaped board of the given radius centred on (0,0).
// Cells outside the radius are off board.
type HexBoard struct {
	ID     string
	Name   string
	Radius int
	Opaque map[HexCoords]bool
}

func NewHexBoard(id string, radius int) *HexBoard {
	return &HexBoard{ID: id, Radius: radius, Opaque: make(map[HexCoords]bool)}
}

func (b *HexBoard) IsOnboard(hex HexCoords) bool {
	return Distance(hex, HexCoords{}) <= b.Radius
}

// IsOpaque reports true for walls and for every cell off the board.
func (b *HexBoard) IsOpaque(hex HexCoords) bool {
	if !b.IsOnboard(hex) {
		return true
	}
	return b.Opaque[hex]
}

// Toggle flips the opacity of an on-board cell and returns the new state.
func (b *HexBoard) Toggle(hex HexCoords) (bool, bool) {
	if !b.IsOnboard(hex) {
		return false, false
	}
	if b.Opaque[hex] {
		delete(b.Opaque, hex)
		return false, true
	}
	b.Opaque[hex] = true
	return true, true
}

// Walls returns the opaque cells ordered by J then I.
func (b *HexBoard) Walls() []HexCoords {
	out := make([]HexCoords, 0, len(b.Opaque))
	for _, hex := range b.Cells() {
		if b.Opaque[hex] {
			out = append(out, hex)
		}
	}
	return out
}

// Cells returns every on-board cell ordered by J then I.
func (b *HexBoard) Cells() []HexCoords {
	out := make([]HexCoords, 0, 3*b.Radius*(b.Radius+1)+1)
	for j := -b.Radius; j <= b.Radius; j++ {
		for i := -b.Radius; i <= b.Radius; i++ {
			hex := HexCoords{I: i, J: j}
			if b.IsOnboard(hex) {
				out = append(out, hex)
			}
		}
	}
	return out
}
