package fov

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
)

// ComputeMany runs one sweep per observer in parallel. The board must be safe
// for concurrent reads. Each result slice is sorted by J then I.
func ComputeMany(ctx context.Context, board Board, observers []geometry.HexCoords, radius int) (map[geometry.HexCoords][]geometry.HexCoords, error) {
	return ComputeManyWithOptions(ctx, board, observers, radius, Options{})
}

// ComputeManyWithOptions is ComputeMany with tracing and strict checks. A
// non-nil Tracer is called from several goroutines at once.
func ComputeManyWithOptions(ctx context.Context, board Board, observers []geometry.HexCoords, radius int, opts Options) (map[geometry.HexCoords][]geometry.HexCoords, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	out := make(map[geometry.HexCoords][]geometry.HexCoords, len(observers))

	for _, observer := range observers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seen := make(map[geometry.HexCoords]struct{})
			err := ComputeWithOptions(board, observer, radius, func(hex geometry.HexCoords) {
				seen[hex] = struct{}{}
			}, opts)
			if err != nil {
				return err
			}
			cells := SortedCells(seen)
			mu.Lock()
			out[observer] = cells
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// SortedCells flattens a visible set, ordered by J then I.
func SortedCells(seen map[geometry.HexCoords]struct{}) []geometry.HexCoords {
	cells := make([]geometry.HexCoords, 0, len(seen))
	for hex := range seen {
		cells = append(cells, hex)
	}
	sort.Slice(cells, func(a, b int) bool {
		if cells[a].J != cells[b].J {
			return cells[a].J < cells[b].J
		}
		return cells[a].I < cells[b].I
	})
	return cells
}
