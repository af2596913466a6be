// Command crystalsolve reads a crystal box problem in the boxio wire format
// from stdin (or a file) and prints the optimal selection to stdout.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/crystalgrid/boxio"
	"github.com/katalvlaran/crystalgrid/crystal"
)

func main() {
	file := flag.String("file", "", "Read the problem from this file instead of stdin")
	verbose := flag.Bool("verbose", false, "Log anchor sweep progress to stderr")
	dump := flag.Bool("dump", false, "Dump the brightness matrix to stderr before solving")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var in io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.WithError(err).Error("open problem file")
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	grid, err := boxio.ReadProblem(in)
	if err != nil {
		log.WithError(err).Error("read problem")
		os.Exit(1)
	}
	if *dump {
		grid.Dump(os.Stderr)
	}

	opts := crystal.DefaultOptions()
	opts.Verbose = *verbose
	opts.Logger = log
	solver, err := crystal.NewSolver(grid, &opts)
	if err != nil {
		log.WithError(err).Error("prepare solver")
		os.Exit(1)
	}

	if err := boxio.WriteSolution(os.Stdout, solver.Solve()); err != nil {
		log.WithError(err).Error("write solution")
		os.Exit(1)
	}
}
