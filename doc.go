/*
Package lattice provides a fixed-size, two-dimensional associative container:
one optional value per (x, y) coordinate, backed by a single contiguous slice.

It is a simpler, more memory-efficient and more type-safe alternative to
nested slices for grid-shaped data such as tile maps, pixel buffers and game
boards. The whole structure lives in one allocation of width*height cells,
addressed row-major (y*width + x).

# Concept

A Grid is constructed once with explicit dimensions and never resizes. Every
slot holds a Cell: either a concrete value (Some) or the absent marker
(None). Absence is a first-class state, not a sentinel value, so legitimate
zero values of the element type are never mistaken for empty slots.

# Key Properties

  - Checked access: Get and Set validate coordinates and fail with
    ErrOutOfBounds without touching the grid.
  - Unchecked access: GetUnchecked and SetUnchecked skip validation for hot
    loops where the caller already owns the bounds proof.
  - Atomic construction: New either returns a fully initialized grid or a
    *ValidationError; no partially built grid is ever observable.
  - No hidden state: each Grid is self-contained and single-threaded; sharing
    one across goroutines requires external synchronization.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/lattice"
	)

	func main() {
		board, err := lattice.New[string](8, 8)
		if err != nil {
			log.Fatal(err)
		}

		if err := board.Put(0, 0, "rook"); err != nil {
			log.Fatal(err)
		}

		cell, err := board.Get(0, 0)
		if err != nil {
			log.Fatal(err)
		}
		if v, ok := cell.Value(); ok {
			fmt.Println("a1:", v)
		}
	}
*/
package lattice
