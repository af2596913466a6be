// Package crystal solves the crystal box problem exactly: select the
// maximum-brightness subset of crystals in an L×C toroidal grid under
// per-cell directional connection constraints.
//
// What:
//
//   - Grid holds per-cell brightness and a 4-bit connection mask
//     (right, up, left, down). Absent positions carry Value == Absent.
//   - RowConsistent / RowsCompatible are the two pure predicates that encode
//     the complete constraint system, including horizontal and vertical wrap.
//   - Solver runs a memoized row-profile dynamic program over column
//     bitmasks, keyed by (row, rowConfig, anchorConfig), and reconstructs
//     the winning cell layout from the memo table.
//
// Why:
//
//   - Placement problems where adjacent "connected" items exclude each other:
//     resonating crystals, interfering antennas, shorting components.
//   - Exact answers on narrow grids; the width drives the exponential cost.
//
// Complexity:
//
//   - Solve: O(L·4^C) time, O(L·4^C) memory (memo is preallocated up front).
//
// Options:
//
//   - Options.Verbose: per-anchor debug logging plus a solve summary.
//   - Options.Logger: logrus destination (nil → package default).
//   - Options.Metrics: Prometheus counters/histograms for solver traffic.
//
// Errors:
//
//   - ErrEmptyGrid: grid dimensions smaller than 1×1, or nil grid.
//   - ErrOutOfBounds: 1-based coordinates outside the grid.
//   - ErrBadConnectionFlag: connection flag outside {0,1}.
//   - ErrTooManyColumns: width beyond MaxColumns; the memo would not fit.
//
// Determinism: ties break toward the smallest qualifying configuration at
// every level, so the reported layout is stable across runs. It is one valid
// optimum, not necessarily the unique one.
package crystal
