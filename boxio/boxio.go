// Package boxio reads crystal box problems and writes their solutions in the
// line-oriented wire format:
//
//	L C N            — rows, columns, crystal count
//	x y v d c e b    — N records: 1-based row/col, brightness, then the
//	                   right/up/left/down connection flags, each 0 or 1
//
// and, on output:
//
//	used total       — selected crystal count and brightness sum
//	row col          — one line per selected cell, 1-based, in the order
//	                   produced by reconstruction
//
// Tokens are whitespace-separated integers; line breaks are not significant.
// The core engine never touches I/O, so this package is the only place the
// wire format exists.
package boxio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/crystalgrid/crystal"
)

// ReadProblem parses a full problem from r and returns the populated grid.
// Returns ErrBadHeader or ErrBadRecord for missing or non-numeric tokens,
// ErrRecordCount for input truncated mid-record, and the crystal package's
// sentinel errors for dimension or coordinate violations.
// Complexity: O(N) plus grid construction.
func ReadProblem(r io.Reader) (*crystal.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var header [3]int
	for f := range header {
		v, err := nextInt(sc)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, strconv.ErrSyntax) {
				return nil, fmt.Errorf("%w: field %d", ErrBadHeader, f+1)
			}

			return nil, err
		}
		header[f] = v
	}

	grid, err := crystal.NewGrid(header[0], header[1])
	if err != nil {
		return nil, err
	}

	count := header[2]
	for i := 0; i < count; i++ {
		var rec [7]int
		for f := range rec {
			v, err := nextInt(sc)
			if err != nil {
				switch {
				case errors.Is(err, io.EOF):
					return nil, fmt.Errorf("%w: got %d of %d", ErrRecordCount, i, count)
				case errors.Is(err, strconv.ErrSyntax):
					return nil, fmt.Errorf("%w (record %d, field %d)", ErrBadRecord, i+1, f+1)
				default:
					return nil, err
				}
			}
			rec[f] = v
		}
		if err := grid.PlaceCrystal(rec[0], rec[1], rec[2], rec[3], rec[4], rec[5], rec[6]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	return grid, nil
}

// nextInt scans one whitespace-separated token and parses it as an int.
// It reports io.EOF for exhausted input, strconv.ErrSyntax for a non-numeric
// token, and wraps underlying reader errors.
func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("boxio: read: %w", err)
		}

		return 0, io.EOF
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, strconv.ErrSyntax
	}

	return v, nil
}

// WriteSolution emits res to w in the wire format: the "used total" line,
// then one "row col" line per selected cell in res.Cells order.
func WriteSolution(w io.Writer, res crystal.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", res.Used, res.Total)
	for _, p := range res.Cells {
		fmt.Fprintf(bw, "%d %d\n", p.Row, p.Col)
	}

	return bw.Flush()
}
