package geometry

import "sort"

// RegionsAcrossWall returns the distinct regions touching a wall cell, in
// ascending order. Two or more means clearing the wall would join them.
func RegionsAcrossWall(regionMap RegionMap, wall HexCoords) []int {
	seen := make(map[int]struct{}, 6)
	for _, n := range wall.Neighbors() {
		if id, ok := regionMap.CellRegion[n]; ok {
			seen[id] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
