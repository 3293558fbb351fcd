// Package metrics counts which algorithm the engine selects at each
// size-based dispatch point and exposes the counts in Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation names a dispatch point.
type Operation string

// Algorithm names the implementation chosen at a dispatch point.
type Algorithm string

const (
	OpMul        Operation = "mul"
	OpToDigits   Operation = "to_digits"
	OpFromDigits Operation = "from_digits"
	OpModReduce  Operation = "mod_reduce"
)

const (
	AlgoBasecase         Algorithm = "basecase"
	AlgoKaratsuba        Algorithm = "karatsuba"
	AlgoDivideAndConquer Algorithm = "divide_and_conquer"
	AlgoPowerOf2         Algorithm = "power_of_2"
	AlgoDivision         Algorithm = "division"
	AlgoBarrett          Algorithm = "barrett"
	AlgoReciprocal       Algorithm = "reciprocal"
	AlgoLargeDigitDivide Algorithm = "large_digit_divide"
)

type key struct {
	op   Operation
	algo Algorithm
}

var (
	registry = prometheus.NewRegistry()

	selections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mpint",
		Name:      "algorithm_selections_total",
		Help:      "Number of times each algorithm was selected at a size-based dispatch point.",
	}, []string{"operation", "algorithm"})

	// counters is filled once in init and only read afterwards.
	counters = map[key]prometheus.Counter{}
)

func init() {
	registry.MustRegister(selections, collectors.NewGoCollector())
	known := map[Operation][]Algorithm{
		OpMul:        {AlgoBasecase, AlgoKaratsuba},
		OpToDigits:   {AlgoBasecase, AlgoDivideAndConquer, AlgoPowerOf2, AlgoLargeDigitDivide},
		OpFromDigits: {AlgoBasecase, AlgoDivideAndConquer, AlgoPowerOf2, AlgoLargeDigitDivide},
		OpModReduce:  {AlgoDivision, AlgoBarrett, AlgoReciprocal, AlgoPowerOf2},
	}
	for op, algos := range known {
		for _, algo := range algos {
			counters[key{op, algo}] = selections.WithLabelValues(string(op), string(algo))
		}
	}
}

// Observe records that algo was selected for op.
func Observe(op Operation, algo Algorithm) {
	if c, ok := counters[key{op, algo}]; ok {
		c.Inc()
		return
	}
	selections.WithLabelValues(string(op), string(algo)).Inc()
}

// Counter returns the counter for (op, algo), mainly for tests.
func Counter(op Operation, algo Algorithm) prometheus.Counter {
	if c, ok := counters[key{op, algo}]; ok {
		return c
	}
	return selections.WithLabelValues(string(op), string(algo))
}

// Registry returns the registry holding the engine's collectors.
func Registry() *prometheus.Registry { return registry }

// Handler returns an http.Handler serving the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// WritePrometheus writes the current metrics in the Prometheus text format.
func WritePrometheus(w http.ResponseWriter, r *http.Request) {
	Handler().ServeHTTP(w, r)
}
