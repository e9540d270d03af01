// Package grid implements the 2048 transition engine: sliding, merging,
// spawning and terminal-state detection on an N×N grid.
//
// All functions are pure. A Grid passed in is never modified; every
// transforming operation returns a fresh Grid so callers can keep the
// previous one as a snapshot.
package grid

import (
	"errors"
	"fmt"
)

// DefaultSize is the default grid dimension.
const DefaultSize = 4

// Grid is an N×N matrix of tile values indexed [row][col].
// Zero marks an empty cell; any other value is a power of two.
type Grid [][]int

// Cell is a grid coordinate.
type Cell struct {
	Row int
	Col int
}

// ErrMalformed is returned by Validate for grids that break the shape or value rules.
var ErrMalformed = errors.New("grid: malformed")

// New returns an empty size×size grid.
func New(size int) Grid {
	if size < 1 {
		panic(fmt.Sprintf("grid: invalid size %d", size))
	}
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]int, size)
	}
	return g
}

// Size returns the grid dimension.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether both grids have the same shape and values.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for r, row := range g {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the highest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Validate checks that g is square and non-empty and that every
// cell holds zero or a power of two.
func Validate(g Grid) error {
	n := len(g)
	if n == 0 {
		return fmt.Errorf("%w: empty grid", ErrMalformed)
	}
	for r, row := range g {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, r, len(row), n)
		}
		for c, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: negative value %d at (%d,%d)", ErrMalformed, v, r, c)
			}
			if v != 0 && (v == 1 || v&(v-1) != 0) {
				return fmt.Errorf("%w: value %d at (%d,%d) is not a power of two", ErrMalformed, v, r, c)
			}
		}
	}
	return nil
}

// mustBeSquare panics when g cannot be processed by the engine.
func mustBeSquare(g Grid) {
	n := len(g)
	if n == 0 {
		panic("grid: empty grid")
	}
	for r, row := range g {
		if len(row) != n {
			panic(fmt.Sprintf("grid: row %d has %d cells, want %d", r, len(row), n))
		}
	}
}
