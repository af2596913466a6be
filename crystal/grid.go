package crystal

import (
	"fmt"
	"io"
)

// Grid is an L×C box of crystal cells. Positions never placed keep the
// default Cell{Value: Absent, Conn: 0}. External coordinates are 1-based;
// storage and every other method in this package are 0-based. The 1→0
// conversion happens in PlaceCrystal and Cell only.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}

// NewGrid constructs an empty rows×cols grid.
// Returns ErrEmptyGrid if either dimension is smaller than 1.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, rows)
	for i := range cells {
		row := make([]Cell, cols)
		for j := range row {
			row[j] = Cell{Value: Absent}
		}
		cells[i] = row
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of grid rows (L).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns (C).
func (g *Grid) Cols() int { return g.cols }

// PlaceCrystal stores a crystal at 1-based (row, col) with the given
// brightness and connection flags (right, up, left, down), each 0 or 1.
// Returns ErrOutOfBounds for coordinates outside the grid and
// ErrBadConnectionFlag for flags outside {0,1}.
// Placing over an occupied position overwrites it.
// Complexity: O(1).
func (g *Grid) PlaceCrystal(row, col, value int, right, up, left, down int) error {
	if row < 1 || row > g.rows || col < 1 || col > g.cols {
		return fmt.Errorf("%w: (%d,%d) on %d×%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	var mask ConnMask
	for i, flag := range [4]int{right, up, left, down} {
		switch flag {
		case 0:
		case 1:
			mask |= 1 << i
		default:
			return fmt.Errorf("%w: got %d", ErrBadConnectionFlag, flag)
		}
	}
	g.cells[row-1][col-1] = Cell{Value: value, Conn: mask}

	return nil
}

// Cell returns the cell at 1-based (row, col).
// Returns ErrOutOfBounds for coordinates outside the grid.
// Complexity: O(1).
func (g *Grid) Cell(row, col int) (Cell, error) {
	if row < 1 || row > g.rows || col < 1 || col > g.cols {
		return Cell{}, fmt.Errorf("%w: (%d,%d) on %d×%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}

	return g.cells[row-1][col-1], nil
}

// at returns the cell at 0-based (row, col) without bounds checking.
// Internal callers iterate inside [0,rows)×[0,cols) by construction.
func (g *Grid) at(row, col int) Cell {
	return g.cells[row][col]
}

// Dump writes the brightness matrix to w, one row per line, for debugging.
func (g *Grid) Dump(w io.Writer) {
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			fmt.Fprintf(w, "%3d ", g.cells[i][j].Value)
		}
		fmt.Fprintln(w)
	}
}
