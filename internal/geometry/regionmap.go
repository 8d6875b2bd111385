package geometry

// RegionMap labels every clear on-board cell with the id of the connected
// region it belongs to. Walls carry no label.
type RegionMap struct {
	CellRegion   map[HexCoords]int
	RegionsCount int
}

func BuildRegionMap(board *HexBoard) RegionMap {
	cells := board.Cells()
	cellRegion := make(map[HexCoords]int, len(cells))

	regionID := 0
	queue := make([]HexCoords, 0, len(cells))

	for _, start := range cells {
		if board.Opaque[start] {
			continue
		}
		if _, done := cellRegion[start]; done {
			continue
		}
		cellRegion[start] = regionID
		queue = append(queue[:0], start)

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			for _, n := range cur.Neighbors() {
				if board.IsOpaque(n) {
					continue
				}
				if _, done := cellRegion[n]; done {
					continue
				}
				cellRegion[n] = regionID
				queue = append(queue, n)
			}
		}
		regionID++
	}

	return RegionMap{CellRegion: cellRegion, RegionsCount: regionID}
}
