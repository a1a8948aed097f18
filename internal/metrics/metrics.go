package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matcher_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	MatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matcher_match_computation_duration_seconds",
			Help:    "Duration of each match computation in seconds.",
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 2},
		},
	)
	MatchStepDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "matcher_match_step_duration_seconds",
			Help:       "Duration of each step in the match computation.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"step"},
	)
	MatchesComputedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "matcher_matches_computed_total",
			Help: "Total number of computed match lists.",
		},
	)
	BackfilledMatchesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "matcher_matches_backfilled_total",
			Help: "Total number of match lists padded with zero-overlap jobs.",
		},
	)
	HTTPRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matcher_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"handler", "code"},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(MatchDuration)
	prometheus.MustRegister(MatchStepDuration)
	prometheus.MustRegister(MatchesComputedCounter)
	prometheus.MustRegister(BackfilledMatchesCounter)
	prometheus.MustRegister(HTTPRequestsCounter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
