package crystal

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// log is the package default solver logger; Options.Logger overrides it.
var log = logrus.New()

// dead marks an infeasible DP state: either the row configuration breaks a
// constraint itself, or every continuation above it does.
const dead = -1

// dpState is one memoized answer for a (row, rowConfig, anchorConfig) key.
// prev is the configuration chosen for the row above, or the anchor itself
// at row 0 (the vertical wrap edge).
type dpState struct {
	computed bool
	value    int
	prev     int
}

// Stats counts memo traffic for one solver instance.
type Stats struct {
	// Computed is the number of DP states evaluated for the first time.
	Computed int
	// Hits is the number of DP states answered from the memo table.
	Hits int
	// Dead is the number of states proven infeasible.
	Dead int
}

// Solver computes the maximum-brightness selection for one Grid.
//
// The state space is (row, rowConfig, anchorConfig) with row ∈ [0,L) and
// both configurations in [0,2^C). The anchor is the configuration fixed for
// the bottom row of the current sweep; it threads through the recursion
// unchanged and is consulted only at row 0, where the vertical wrap makes
// the bottom row the neighbor above.
//
// A Solver owns its memo table exclusively and is not safe for concurrent
// use. The grid must not be mutated between NewSolver and Solve.
type Solver struct {
	grid       *Grid
	numConfigs int
	memo       [][][]dpState // [row][rowConfig][anchorConfig]
	opts       Options
	logger     *logrus.Logger
	stats      Stats
	solved     bool
	result     Result
}

// NewSolver prepares a solver for g, preallocating the full L×2^C×2^C memo
// table. opts may be nil for defaults. Returns ErrEmptyGrid for a nil grid
// and ErrTooManyColumns when the table would be infeasible (C > MaxColumns).
// Complexity: O(L·4^C) memory.
func NewSolver(g *Grid, opts *Options) (*Solver, error) {
	if g == nil {
		return nil, ErrEmptyGrid
	}
	if g.cols > MaxColumns {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyColumns, g.cols, MaxColumns)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	logger := o.Logger
	if logger == nil {
		logger = log
	}

	n := 1 << g.cols
	memo := make([][][]dpState, g.rows)
	for i := range memo {
		memo[i] = make([][]dpState, n)
		for c := range memo[i] {
			memo[i][c] = make([]dpState, n)
		}
	}

	return &Solver{
		grid:       g,
		numConfigs: n,
		memo:       memo,
		opts:       o,
		logger:     logger,
	}, nil
}

// Stats returns memo traffic counters accumulated so far.
func (s *Solver) Stats() Stats { return s.stats }

// Solve runs one full sweep: every configuration in [0,2^C) is tried as the
// anchor for the bottom row via solve(L−1, anchor, anchor), the best anchor
// wins, and the memo table is walked backward to reconstruct the concrete
// cells. Ties break toward the smallest configuration at both the anchor
// and the transition level (strict >), so repeated calls and repeated
// solvers over the same grid report the same layout. The empty configuration
// is always feasible, so Solve degrades to an empty selection with total 0
// when nothing can be selected.
//
// Solve is idempotent: the result of the first call is cached and returned
// unchanged afterwards.
//
// Complexity: O(L·4^C) time over the lifetime of the memo.
func (s *Solver) Solve() Result {
	if s.solved {
		return s.result
	}
	start := time.Now()

	bestAnchor := -1
	best := dpState{computed: true, value: dead}
	for anchor := 0; anchor < s.numConfigs; anchor++ {
		st := s.solve(s.grid.rows-1, anchor, anchor)
		if s.opts.Verbose {
			s.logger.WithFields(logrus.Fields{
				"anchor": anchor,
				"value":  st.value,
			}).Debug("anchor swept")
		}
		if st.value > best.value {
			best = st
			bestAnchor = anchor
		}
	}

	s.result = s.reconstruct(bestAnchor, best.value)
	s.solved = true

	if s.opts.Metrics {
		solveTotal.Inc()
		solveDuration.Observe(time.Since(start).Seconds())
		selectedCells.Observe(float64(s.result.Used))
	}
	if s.opts.Verbose {
		s.logger.WithFields(logrus.Fields{
			"anchor":   bestAnchor,
			"used":     s.result.Used,
			"total":    s.result.Total,
			"computed": s.stats.Computed,
			"dead":     s.stats.Dead,
			"elapsed":  time.Since(start),
		}).Info("grid solved")
	}

	return s.result
}

// solve is the memoized recursion over (row, config, anchor).
//
//  1. Memo hit → cached state.
//  2. Inconsistent row → dead.
//  3. Row 0 → feasible only when compatible with the anchor above (wrap).
//  4. Otherwise scan every upper configuration, keeping the first one (by
//     increasing integer value) that maximizes child value + row value.
func (s *Solver) solve(row, config, anchor int) dpState {
	if st := s.memo[row][config][anchor]; st.computed {
		s.stats.Hits++
		if s.opts.Metrics {
			memoHitTotal.Inc()
		}

		return st
	}
	s.stats.Computed++
	if s.opts.Metrics {
		memoMissTotal.Inc()
	}

	if !s.grid.RowConsistent(row, config) {
		return s.store(row, config, anchor, dpState{computed: true, value: dead})
	}

	// Sum the selected brightness values; the consistency gate already
	// ruled out absent cells, so every contribution is a real crystal.
	rowValue := 0
	for j := 0; j < s.grid.cols; j++ {
		if config&(1<<j) != 0 {
			rowValue += s.grid.at(row, j).Value
		}
	}

	if row == 0 {
		if !s.grid.RowsCompatible(0, config, anchor) {
			return s.store(row, config, anchor, dpState{computed: true, value: dead})
		}

		return s.store(row, config, anchor, dpState{computed: true, value: rowValue, prev: anchor})
	}

	best := dpState{computed: true, value: dead}
	for upper := 0; upper < s.numConfigs; upper++ {
		if !s.grid.RowsCompatible(row, config, upper) {
			continue
		}
		child := s.solve(row-1, upper, anchor)
		if child.value == dead {
			continue
		}
		if child.value+rowValue > best.value {
			best = dpState{computed: true, value: child.value + rowValue, prev: upper}
		}
	}

	return s.store(row, config, anchor, best)
}

// store memoizes st under (row, config, anchor) and accounts dead states.
func (s *Solver) store(row, config, anchor int, st dpState) dpState {
	s.memo[row][config][anchor] = st
	if st.value == dead {
		s.stats.Dead++
		if s.opts.Metrics {
			deadStateTotal.Inc()
		}
	}

	return st
}
