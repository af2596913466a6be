package crystal

// This file holds the two pure predicates that encode the entire constraint
// system. A row configuration is an integer in [0, 2^C); bit j set means
// column j is selected in that row. Adjacency wraps on both axes: column
// C−1 neighbors column 0, and row L−1 neighbors row 0.

// RowConsistent reports whether config is a legal selection for the given
// 0-based row on its own: every set bit must sit on a present crystal, and
// no crystal may be selected together with a selected right neighbor it is
// connected to. The right neighbor of column C−1 is column 0.
// Complexity: O(C).
func (g *Grid) RowConsistent(row, config int) bool {
	for j := 0; j < g.cols; j++ {
		if config&(1<<j) == 0 {
			continue
		}
		c := g.at(row, j)
		if c.Value == Absent {
			return false
		}
		if c.Conn.Right() && config&(1<<((j+1)%g.cols)) != 0 {
			return false
		}
	}

	return true
}

// RowsCompatible reports whether lowerConfig for the given 0-based row may
// coexist with upperConfig for the row above it. The pair is illegal when
// some column is selected in both rows and the lower row's cell carries an
// up-connection. For row 0 the "row above" is row L−1 (vertical wrap), which
// is why the solver checks the base row against its anchor configuration.
// Complexity: O(C).
func (g *Grid) RowsCompatible(row, lowerConfig, upperConfig int) bool {
	both := lowerConfig & upperConfig
	for j := 0; j < g.cols; j++ {
		if both&(1<<j) != 0 && g.at(row, j).Conn.Up() {
			return false
		}
	}

	return true
}
