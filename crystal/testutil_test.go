package crystal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crystalgrid/crystal"
)

// mustGrid builds an empty rows×cols grid or fails the test.
func mustGrid(t *testing.T, rows, cols int) *crystal.Grid {
	t.Helper()
	g, err := crystal.NewGrid(rows, cols)
	require.NoError(t, err, "NewGrid(%d,%d)", rows, cols)

	return g
}

// mustPlace places one crystal or fails the test.
func mustPlace(t *testing.T, g *crystal.Grid, row, col, value, right, up, left, down int) {
	t.Helper()
	require.NoError(t, g.PlaceCrystal(row, col, value, right, up, left, down),
		"PlaceCrystal(%d,%d)", row, col)
}

// mustSolve runs a fresh solver over g or fails the test.
func mustSolve(t *testing.T, g *crystal.Grid) crystal.Result {
	t.Helper()
	s, err := crystal.NewSolver(g, nil)
	require.NoError(t, err, "NewSolver")

	return s.Solve()
}

// randomGrid fills a rows×cols grid from a seeded source: each position holds
// a crystal with probability ~0.7, brightness 0..5, independent random flags.
func randomGrid(t *testing.T, rows, cols int, seed int64) *crystal.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := mustGrid(t, rows, cols)
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			if rng.Intn(10) >= 7 {
				continue // leave the position absent
			}
			mustPlace(t, g, i, j, rng.Intn(6),
				rng.Intn(2), rng.Intn(2), rng.Intn(2), rng.Intn(2))
		}
	}

	return g
}

// selectionValid applies the full constraint system to an arbitrary cell
// subset (bit i*cols+j ⇔ cell at 0-based (i,j) selected), wrap included.
// Mirrors the solver's two predicates without sharing code with them.
func selectionValid(t *testing.T, g *crystal.Grid, mask int) bool {
	t.Helper()
	rows, cols := g.Rows(), g.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mask&(1<<(i*cols+j)) == 0 {
				continue
			}
			c, err := g.Cell(i+1, j+1)
			require.NoError(t, err, "Cell(%d,%d)", i+1, j+1)
			if c.Value == crystal.Absent {
				return false
			}
			if c.Conn.Right() && mask&(1<<(i*cols+(j+1)%cols)) != 0 {
				return false
			}
			if c.Conn.Up() && mask&(1<<(((i-1+rows)%rows)*cols+j)) != 0 {
				return false
			}
		}
	}

	return true
}

// bruteForceTotal enumerates every cell subset and returns the maximum total
// brightness over the valid ones. Exponential in rows×cols; tests keep grids
// at or below 4×4.
func bruteForceTotal(t *testing.T, g *crystal.Grid) int {
	t.Helper()
	rows, cols := g.Rows(), g.Cols()
	best := 0
	for mask := 0; mask < 1<<(rows*cols); mask++ {
		if !selectionValid(t, g, mask) {
			continue
		}
		total := 0
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if mask&(1<<(i*cols+j)) != 0 {
					c, _ := g.Cell(i+1, j+1)
					total += c.Value
				}
			}
		}
		if total > best {
			best = total
		}
	}

	return best
}

// cellsToMask converts a Result cell list back to a subset bitmask.
func cellsToMask(g *crystal.Grid, cells []crystal.Position) int {
	mask := 0
	for _, p := range cells {
		mask |= 1 << ((p.Row-1)*g.Cols() + (p.Col - 1))
	}

	return mask
}
