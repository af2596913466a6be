// Package crystal defines core types, options, and sentinel errors
// for the crystal subpackage of github.com/katalvlaran/crystalgrid.
package crystal

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for crystal operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("crystal: grid must have at least one row and one column")
	// ErrOutOfBounds indicates 1-based coordinates outside the grid.
	ErrOutOfBounds = errors.New("crystal: coordinates out of grid bounds")
	// ErrBadConnectionFlag indicates a connection flag outside {0,1}.
	ErrBadConnectionFlag = errors.New("crystal: connection flags must be 0 or 1")
	// ErrTooManyColumns indicates the memo table L·4^C would be infeasible.
	ErrTooManyColumns = errors.New("crystal: column count exceeds MaxColumns")
)

// MaxColumns bounds the grid width accepted by NewSolver.
// The memo table holds L·2^C·2^C entries, so width is the hard cost driver:
// C=12 already means ~17M entries per row.
const MaxColumns = 12

// ConnMask packs a cell's four directional connection flags into one value.
// Bit order is fixed: bit0=right, bit1=up, bit2=left, bit3=down.
type ConnMask uint8

const (
	// ConnRight marks a connection to the cell in the next column.
	ConnRight ConnMask = 1 << iota
	// ConnUp marks a connection to the cell in the previous row.
	ConnUp
	// ConnLeft marks a connection to the cell in the previous column.
	ConnLeft
	// ConnDown marks a connection to the cell in the next row.
	ConnDown
)

// Right reports whether the rightward connection bit is set.
func (m ConnMask) Right() bool { return m&ConnRight != 0 }

// Up reports whether the upward connection bit is set.
func (m ConnMask) Up() bool { return m&ConnUp != 0 }

// Left reports whether the leftward connection bit is set.
func (m ConnMask) Left() bool { return m&ConnLeft != 0 }

// Down reports whether the downward connection bit is set.
func (m ConnMask) Down() bool { return m&ConnDown != 0 }

// Absent is the brightness value of a position holding no crystal.
// An absent cell can never be selected.
const Absent = -1

// Cell is one grid position: a brightness value and a connection mask.
// Value == Absent means no crystal occupies the position.
// Cells are immutable once placed; the Grid owns them exclusively.
type Cell struct {
	Value int
	Conn  ConnMask
}

// Position is a selected cell in 1-based external coordinates.
type Position struct {
	Row, Col int
}

// Result holds the outcome of one solve: how many crystals were selected,
// the sum of their brightness values, and the concrete cells in the order
// produced by reconstruction (bottom row first, rightmost column first).
type Result struct {
	Used  int
	Total int
	Cells []Position
}

// Options configures a Solver.
//
// Fields:
//   - Verbose — log each anchor sweep result at debug level.
//   - Logger  — destination for solver logs; nil selects the package default.
//   - Metrics — record Prometheus counters/histograms for this solver.
type Options struct {
	Verbose bool
	Logger  *logrus.Logger
	Metrics bool
}

// DefaultOptions returns Options with logging quiet and metrics disabled.
func DefaultOptions() Options {
	return Options{
		Verbose: false,
		Logger:  nil,
		Metrics: false,
	}
}
