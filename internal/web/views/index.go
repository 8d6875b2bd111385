package views

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
	"github.com/Ko-stant/hex-fov-engine/internal/protocol"
)

const cellSize = 14.0

type cellView struct {
	State  string
	I      string
	J      string
	Points string
}

// boardCells lists every on-board cell, ordered by J then I, with the state
// the page colours it by.
func boardCells(s protocol.Snapshot) []cellView {
	walls := make(map[geometry.HexCoords]bool, len(s.Walls))
	for _, h := range s.Walls {
		walls[h] = true
	}
	seen := make(map[geometry.HexCoords]bool, len(s.Visible))
	for _, h := range s.Visible {
		seen[h] = true
	}

	cells := geometry.NewHexBoard(s.BoardID, s.BoardRadius).Cells()
	out := make([]cellView, 0, len(cells))
	for _, h := range cells {
		state := "hidden"
		switch {
		case h == s.Observer:
			state = "observer"
		case walls[h]:
			state = "wall"
		case seen[h]:
			state = "seen"
		}
		out = append(out, cellView{
			State:  state,
			I:      strconv.Itoa(h.I),
			J:      strconv.Itoa(h.J),
			Points: hexPoints(h),
		})
	}
	return out
}

func viewBox(s protocol.Snapshot) string {
	extent := (float64(s.BoardRadius) + 1) * cellSize * math.Sqrt(3)
	return fmt.Sprintf("%.1f %.1f %.1f %.1f", -extent, -extent, 2*extent, 2*extent)
}

func summary(s protocol.Snapshot) string {
	return fmt.Sprintf("observer %s, radius %d, %d cells visible", s.Observer, s.Radius, len(s.Visible))
}

// hexPoints lays canonical axes out 120 degrees apart with pointy-top cells.
func hexPoints(h geometry.HexCoords) string {
	cx := cellSize * math.Sqrt(3) * (float64(h.I) - float64(h.J)/2)
	cy := -cellSize * 1.5 * float64(h.J)
	pts := make([]string, 0, 6)
	for k := range 6 {
		a := math.Pi/6 + float64(k)*math.Pi/3
		pts = append(pts, fmt.Sprintf("%.1f,%.1f", cx+cellSize*math.Cos(a), cy+cellSize*math.Sin(a)))
	}
	return strings.Join(pts, " ")
}
