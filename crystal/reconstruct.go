package crystal

// reconstruct walks the memo table backward from the winning anchor and
// collects the selected cells in external 1-based coordinates. Rows are
// emitted bottom-up (L−1 … 0) and columns right-to-left (C−1 … 0) within a
// row; this ordering is part of the public contract of Result.Cells.
//
// Every state on the walk was computed during the sweep that produced
// anchor, so prev links are always valid. Row indices are logically cyclic
// (row L−1 neighbors row 0), but the walk itself never wraps: the cyclic
// edge was already enforced when row 0 was checked against the anchor.
// Complexity: O(L·C).
func (s *Solver) reconstruct(anchor, total int) Result {
	if anchor < 0 {
		// No feasible anchor. Unreachable for a well-formed grid: the empty
		// configuration is always consistent and compatible with itself.
		return Result{}
	}

	res := Result{Total: total}
	config := anchor
	for row := s.grid.rows - 1; row >= 0; row-- {
		for j := s.grid.cols - 1; j >= 0; j-- {
			if config&(1<<j) != 0 {
				res.Used++
				res.Cells = append(res.Cells, Position{Row: row + 1, Col: j + 1})
			}
		}
		config = s.memo[row][config][anchor].prev
	}

	return res
}
