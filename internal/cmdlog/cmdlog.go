package cmdlog

import (
	"time"

	"followgraph/internal/logging"
	"followgraph/internal/metrics"
)

// Run executes f as the named CLI command. Every run is counted; failures are counted
// separately and logged with the error, successes are logged with their wall time.
func Run(cmd string, f func() error) error {
	metrics.IncCommandRun(cmd)
	start := time.Now()
	err := f()
	fields := map[string]any{"command": cmd, "elapsed": time.Since(start).String()}
	if err != nil {
		metrics.IncCommandError(cmd)
		fields["error"] = err.Error()
		logging.Error("command_failed", fields)
		return err
	}
	logging.Info("command_ok", fields)
	return nil
}
