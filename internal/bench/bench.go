// Package bench drives repeated instrumented runs over a set of inputs
// and turns the per-run profiling reports into aggregates, archived
// history rows, and exported metrics.
package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/OOAAHH/RNAView/internal/config"
	"github.com/OOAAHH/RNAView/internal/history"
	"github.com/OOAAHH/RNAView/internal/report"
	"github.com/OOAAHH/RNAView/internal/runner"
)

// Runner abstracts the host invocation so tests can stub it.
type Runner interface {
	Run(ctx context.Context, input string) (*runner.Result, error)
}

// InputResult is the bench outcome for one input.
type InputResult struct {
	Input     string
	Aggregate report.Aggregate
	// WallTimes are the measured runs' wall clocks, in run order.
	WallTimes []time.Duration
}

// Bench executes the configured benchmark.
type Bench struct {
	cfg      *config.Config
	runner   Runner
	store    *history.Store
	recorder Recorder
	revision string
}

// Option configures a Bench.
type Option func(*Bench)

// WithRunner replaces the default process-spawning runner.
func WithRunner(r Runner) Option {
	return func(b *Bench) { b.runner = r }
}

// WithStore archives measured runs to the given history store.
func WithStore(s *history.Store) Option {
	return func(b *Bench) { b.store = s }
}

// WithRecorder exports run outcomes through rec.
func WithRecorder(rec Recorder) Option {
	return func(b *Bench) { b.recorder = rec }
}

// WithRevision stamps archived runs with the given revision.
func WithRevision(rev string) Option {
	return func(b *Bench) { b.revision = rev }
}

// New builds a Bench from cfg.
func New(cfg *config.Config, opts ...Option) *Bench {
	b := &Bench{
		cfg: cfg,
		runner: &runner.Runner{
			Binary:  cfg.Binary,
			Args:    cfg.Args,
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		recorder: NoopRecorder{},
		revision: cfg.Revision,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run benches every configured input: warmup runs are executed and
// discarded, measured runs are aggregated, archived, and exported. The
// first failing run aborts the bench.
func (b *Bench) Run(ctx context.Context) ([]InputResult, error) {
	results := make([]InputResult, 0, len(b.cfg.Inputs))
	for _, input := range b.cfg.Inputs {
		res, err := b.runInput(ctx, input)
		if err != nil {
			b.recorder.IncRunOutcome("failed")
			return nil, err
		}
		b.recorder.IncRunOutcome("success")
		results = append(results, *res)
	}
	return results, nil
}

func (b *Bench) runInput(ctx context.Context, input string) (*InputResult, error) {
	slog.Info("benching input",
		slog.String("input", input),
		slog.Int("warmup", b.cfg.Warmup),
		slog.Int("runs", b.cfg.Runs))

	for i := 0; i < b.cfg.Warmup; i++ {
		if _, err := b.runner.Run(ctx, input); err != nil {
			return nil, fmt.Errorf("warmup %d: %w", i+1, err)
		}
	}

	reports := make([]*report.Report, 0, b.cfg.Runs)
	walls := make([]time.Duration, 0, b.cfg.Runs)
	for i := 0; i < b.cfg.Runs; i++ {
		res, err := b.runner.Run(ctx, input)
		if err != nil {
			b.recorder.ObserveRunDuration(input, 0, false)
			return nil, fmt.Errorf("run %d: %w", i+1, err)
		}
		b.recorder.ObserveRunDuration(input, res.WallTime, true)

		reports = append(reports, res.Report)
		walls = append(walls, res.WallTime)

		if err := b.archive(ctx, res); err != nil {
			return nil, err
		}
	}

	agg := report.AggregateRuns(reports)
	for _, stage := range report.TimeNames() {
		if st, ok := agg.Times[stage]; ok {
			b.recorder.ObserveStageTotal(input, stage, st.Median)
		}
	}

	return &InputResult{Input: input, Aggregate: agg, WallTimes: walls}, nil
}

func (b *Bench) archive(ctx context.Context, res *runner.Result) error {
	if b.store == nil {
		return nil
	}
	raw, err := json.Marshal(res.Report)
	if err != nil {
		return fmt.Errorf("marshal report for archive: %w", err)
	}
	run := history.Run{
		ID:       res.ID,
		Input:    res.Input,
		Revision: b.revision,
		WallNS:   res.WallTime.Nanoseconds(),
		Report:   raw,
	}
	if err := b.store.Append(ctx, run); err != nil {
		return fmt.Errorf("archive run %s: %w", res.ID, err)
	}
	return nil
}
