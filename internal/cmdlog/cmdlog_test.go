package cmdlog

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"followgraph/internal/logging"
	"followgraph/internal/metrics"
)

func TestRunCountsAndLogs(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)
	var buf bytes.Buffer
	if _, err := logging.Setup(&buf, "text", "info"); err != nil {
		t.Fatal(err)
	}

	runs := testutil.ToFloat64(metrics.CommandRuns.WithLabelValues("cmdlog_test"))
	errs := testutil.ToFloat64(metrics.CommandErrors.WithLabelValues("cmdlog_test"))

	if err := Run("cmdlog_test", func() error { return nil }); err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	if err := Run("cmdlog_test", func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if got := testutil.ToFloat64(metrics.CommandRuns.WithLabelValues("cmdlog_test")); got != runs+2 {
		t.Fatalf("runs = %v, want %v", got, runs+2)
	}
	if got := testutil.ToFloat64(metrics.CommandErrors.WithLabelValues("cmdlog_test")); got != errs+1 {
		t.Fatalf("errors = %v, want %v", got, errs+1)
	}
	out := buf.String()
	if !strings.Contains(out, "msg=command_ok") || !strings.Contains(out, "msg=command_failed") || !strings.Contains(out, "error=boom") {
		t.Fatalf("unexpected log output %q", out)
	}
}
