package bench

import "time"

// Recorder receives bench run outcomes for export. The default
// NoopRecorder keeps standalone bench invocations free of any metrics
// machinery; daemon mode swaps in the Prometheus implementation. The
// embedded profiling recorder never goes through this interface — it
// has its own report path and a no-lookup hot-path contract.
type Recorder interface {
	ObserveRunDuration(input string, d time.Duration, success bool)
	IncRunOutcome(outcome string) // outcome: success|failed
	ObserveStageTotal(input, stage string, ns int64)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(string, time.Duration, bool) {}
func (NoopRecorder) IncRunOutcome(string)                          {}
func (NoopRecorder) ObserveStageTotal(string, string, int64)       {}
