// Package crystalgrid is an exact optimizer for crystal selection on a
// toroidal grid: pick the brightest compatible subset of cells under
// directional connection constraints.
//
// 🚀 What is crystalgrid?
//
//	A small, deterministic library that solves the "crystal box" problem:
//	an L×C box holds weighted crystals, each carrying up to four directional
//	connections (right, up, left, down). Two connected crystals may never be
//	selected together, and adjacency wraps around both axes: column C−1
//	touches column 0, row L−1 touches row 0. crystalgrid finds the selection
//	with the maximum total brightness, exactly.
//
// ✨ Key features:
//
//   - Exact row-profile dynamic programming over column bitmasks
//   - Deterministic tie-breaking: the smallest qualifying configuration wins
//   - Full reconstruction of the winning cell layout, not just the score
//   - Structured logging (logrus) and Prometheus instrumentation, both opt-in
//   - Line-oriented problem reader / solution writer in boxio
//
// Everything is organized under three packages:
//
//	crystal/ — grid model, compatibility predicates, DP solver, reconstruction
//	boxio/   — reader for "L C N" + crystal records, writer for solutions
//	cmd/     — the crystalsolve command-line front end
//
// Quick ASCII example (2×3 box, ■ = selected):
//
//	    ■ · ■
//	    · ■ ·
//
// Complexity is O(L·4^C) in both time and memory — exponential in the column
// count by design. Keep C small; the solver refuses C > crystal.MaxColumns.
//
//	go get github.com/katalvlaran/crystalgrid/crystal
package crystalgrid
