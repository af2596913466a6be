package crystal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the solver. Collectors register on the
// default registry at package init; they only receive samples when a solver
// runs with Options.Metrics enabled.
var (
	solveTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crystal_solver_solves_total",
		Help: "Number of completed solver sweeps.",
	})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "crystal_solver_solve_duration_seconds",
		Help:    "Wall time of one full solve, anchor sweep plus reconstruction.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	memoHitTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crystal_solver_memo_hits_total",
		Help: "DP states answered from the memo table.",
	})

	memoMissTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crystal_solver_memo_misses_total",
		Help: "DP states computed for the first time.",
	})

	deadStateTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crystal_solver_dead_states_total",
		Help: "DP states proven infeasible.",
	})

	selectedCells = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "crystal_solver_selected_cells",
		Help:    "Crystals selected per solved grid.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)
