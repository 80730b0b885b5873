package lattice

// Cell is the optional value held by a single grid slot: either a value of T
// or the absent marker. The zero value is absent, which is what lets a fresh
// grid come up all-empty without an initialization pass.
//
// Absence is a distinct state rather than a sentinel value of T, so zero
// values of T ("" or 0) stored deliberately are never confused with slots
// that were cleared or never written.
type Cell[T any] struct {
	value   T
	present bool
}

// Some wraps a concrete value in a present cell.
func Some[T any](v T) Cell[T] {
	return Cell[T]{value: v, present: true}
}

// None returns the absent cell.
func None[T any]() Cell[T] {
	return Cell[T]{}
}

// HasValue reports whether the cell holds a value.
func (c Cell[T]) HasValue() bool {
	return c.present
}

// Value returns the held value and whether one is present. For an absent
// cell it returns the zero value of T and false.
func (c Cell[T]) Value() (T, bool) {
	return c.value, c.present
}
