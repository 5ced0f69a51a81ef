package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetricsExposure(t *testing.T) {
	AnalysisRuns.Inc()
	TweetsScanned.Add(3)
	FollowEdges.Set(2)
	RankedUsers.Set(4)
	IncCommandRun("graph")
	IncCommandError("graph")
	ObserveAnalysisDuration(time.Now().Add(-1500 * time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		"followgraph_analysis_runs_total",
		"followgraph_analysis_duration_seconds",
		"followgraph_tweets_scanned_total",
		"followgraph_follow_edges",
		"followgraph_ranked_users",
		`followgraph_command_runs_total{command="graph"}`,
		`followgraph_command_errors_total{command="graph"}`,
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}
