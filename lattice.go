package lattice

import (
	"fmt"
	"math"
)

// MaxCells is the ceiling on width*height for a single grid. It mirrors the
// 32-bit length limit of typical array types so grids behave the same on
// 32-bit and 64-bit platforms.
const MaxCells = math.MaxInt32

// Grid is a fixed-size rectangular field of optional values. It owns a single
// contiguous backing slice of width*height cells; every cell starts absent.
//
// A Grid is not safe for concurrent use. Callers that share one across
// goroutines must synchronize externally (e.g. a sync.Mutex around the whole
// grid, or disjoint coordinate ranges per goroutine).
type Grid[T any] struct {
	width  int
	height int
	cells  []Cell[T]
}

// New allocates a Grid with the given dimensions. Both must be strictly
// positive and their product must not exceed MaxCells; otherwise a
// *ValidationError is returned and nothing is allocated.
func New[T any](width, height int) (*Grid[T], error) {
	if width <= 0 {
		return nil, &ValidationError{Dimension: "width", Reason: ReasonNonPositive}
	}
	if height <= 0 {
		return nil, &ValidationError{Dimension: "height", Reason: ReasonNonPositive}
	}
	if width > MaxCells/height {
		return nil, &ValidationError{Reason: ReasonTooLarge}
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]Cell[T], width*height),
	}, nil
}

// Width returns the horizontal dimension fixed at construction.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the vertical dimension fixed at construction.
func (g *Grid[T]) Height() int { return g.height }

// Get returns the cell at (x, y). Coordinates outside
// [0, width) x [0, height) yield an error wrapping ErrOutOfBounds.
func (g *Grid[T]) Get(x, y int) (Cell[T], error) {
	if !g.inBounds(x, y) {
		return None[T](), g.boundsError(x, y)
	}
	return g.cells[g.index(x, y)], nil
}

// Set overwrites the cell at (x, y). Writing None clears the slot. On a
// bounds failure the grid is left untouched and an error wrapping
// ErrOutOfBounds is returned.
func (g *Grid[T]) Set(x, y int, c Cell[T]) error {
	if !g.inBounds(x, y) {
		return g.boundsError(x, y)
	}
	g.cells[g.index(x, y)] = c
	return nil
}

// Put stores a concrete value at (x, y). Shorthand for Set with Some(v).
func (g *Grid[T]) Put(x, y int, v T) error {
	return g.Set(x, y, Some(v))
}

// Clear marks the cell at (x, y) absent. Shorthand for Set with None.
func (g *Grid[T]) Clear(x, y int) error {
	return g.Set(x, y, None[T]())
}

// GetUnchecked returns the cell at (x, y) without bounds validation.
//
// The caller guarantees 0 <= x < Width() and 0 <= y < Height(). Out-of-range
// coordinates read an unrelated slot or panic on the backing slice. Reserve
// this for hot loops whose counters are already bounded by the dimensions;
// everything else should go through Get.
func (g *Grid[T]) GetUnchecked(x, y int) Cell[T] {
	return g.cells[g.index(x, y)]
}

// SetUnchecked overwrites the cell at (x, y) without bounds validation.
// Same caller contract as GetUnchecked: misuse corrupts an unrelated slot or
// panics.
func (g *Grid[T]) SetUnchecked(x, y int, c Cell[T]) {
	g.cells[g.index(x, y)] = c
}

// index maps (x, y) to the row-major slot y*width + x. Every accessor goes
// through this mapping.
func (g *Grid[T]) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid[T]) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid[T]) boundsError(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
}
