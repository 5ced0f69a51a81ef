package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AnalysisRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "followgraph_analysis_runs_total",
		Help: "Total analysis runs",
	})
	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "followgraph_analysis_duration_seconds",
		Help:    "Analysis duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	TweetsScanned = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "followgraph_tweets_scanned_total",
		Help: "Total tweets scanned for mentions",
	})
	FollowEdges = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "followgraph_follow_edges",
		Help: "Follow edges inferred by the last analysis run",
	})
	RankedUsers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "followgraph_ranked_users",
		Help: "Users ranked by the last analysis run",
	})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "followgraph_command_runs_total",
		Help: "Total CLI command runs",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "followgraph_command_errors_total",
		Help: "Total CLI command errors",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(AnalysisRuns, AnalysisDuration, TweetsScanned, FollowEdges, RankedUsers, CommandRuns, CommandErrors)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, mux) }()
}

// ObserveAnalysisDuration records a run duration.
func ObserveAnalysisDuration(start time.Time) {
	AnalysisDuration.Observe(time.Since(start).Seconds())
}

func IncCommandRun(cmd string)   { CommandRuns.WithLabelValues(cmd).Inc() }
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }
