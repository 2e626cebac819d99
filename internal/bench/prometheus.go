package bench

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder exports bench run outcomes through a Prometheus
// registry. Used by daemon mode, where recurring benches feed a scrape
// endpoint.
type PrometheusRecorder struct {
	runDuration *prom.HistogramVec
	runOutcome  *prom.CounterVec
	stageTotal  *prom.GaugeVec
}

// NewPrometheusRecorder constructs and registers the bench metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		runDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "rnaprofile",
			Name:      "run_duration_seconds",
			Help:      "Wall time of individual bench runs",
			Buckets:   prom.DefBuckets,
		}, []string{"input", "result"}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "rnaprofile",
			Name:      "run_outcomes_total",
			Help:      "Bench run outcomes by final status",
		}, []string{"outcome"}),
		stageTotal: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "rnaprofile",
			Name:      "stage_total_ns",
			Help:      "Accumulated stage nanoseconds from the most recent run",
		}, []string{"input", "stage"}),
	}
	reg.MustRegister(pr.runDuration, pr.runOutcome, pr.stageTotal)
	return pr
}

func (p *PrometheusRecorder) ObserveRunDuration(input string, d time.Duration, success bool) {
	result := "success"
	if !success {
		result = "failed"
	}
	p.runDuration.WithLabelValues(input, result).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome string) {
	p.runOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) ObserveStageTotal(input, stage string, ns int64) {
	p.stageTotal.WithLabelValues(input, stage).Set(float64(ns))
}
